// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"devconnect-api/internal/services"
	"devconnect-api/internal/transport/httpdto"
	devconnect_errors "devconnect-api/pkg/errors"
	"devconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user HTTP endpoints.
type UserHandler struct {
	service *services.UserService
	logger  *logger.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(service *services.UserService, l *logger.Logger) *UserHandler {
	return &UserHandler{service: service, logger: l}
}

// Index acknowledges the route is mounted.
func (h *UserHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, "[users] User route")
}

// Register handles user registration.
func (h *UserHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorsResponse("Invalid request body"))
		return
	}

	token, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeRegisterError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.TokenResponse{Token: token})
}

func (h *UserHandler) writeRegisterError(c *gin.Context, err error) {
	var verrs services.ValidationError
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorsResponse(verrs.Messages()...))
	case errors.Is(err, devconnect_errors.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorsResponse("User already exists"))
	default:
		// No detail leaks to the caller; the cause is logged server-side.
		if h.logger != nil {
			h.logger.Errorf("register failed: %s", err.Error())
		}
		c.String(http.StatusInternalServerError, "Server error")
	}
}
