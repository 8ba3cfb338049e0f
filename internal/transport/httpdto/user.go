package httpdto

// RegisterRequest is used for POST /api/users. Fields are validated by the
// service layer so that all violations are reported together.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned after successful registration
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorEntry represents a single field or request error
type ErrorEntry struct {
	Msg string `json:"msg"`
}

// ErrorsResponse is the error envelope for client errors
type ErrorsResponse struct {
	Errors []ErrorEntry `json:"errors"`
}

func NewErrorsResponse(msgs ...string) ErrorsResponse {
	entries := make([]ErrorEntry, len(msgs))
	for i, msg := range msgs {
		entries[i] = ErrorEntry{Msg: msg}
	}
	return ErrorsResponse{Errors: entries}
}
