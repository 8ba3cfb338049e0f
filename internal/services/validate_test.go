package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister_Valid(t *testing.T) {
	t.Parallel()

	verrs := ValidateRegister(RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	assert.Nil(t, verrs)
}

func TestValidateRegister_SingleField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      RegisterInput
		wantMsg string
	}{
		{
			name:    "missing name",
			in:      RegisterInput{Email: "alice@example.com", Password: "secret1"},
			wantMsg: "Name is required",
		},
		{
			name:    "whitespace name",
			in:      RegisterInput{Name: "   ", Email: "alice@example.com", Password: "secret1"},
			wantMsg: "Name is required",
		},
		{
			name:    "invalid email",
			in:      RegisterInput{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantMsg: "Please include a valid email",
		},
		{
			name:    "missing email",
			in:      RegisterInput{Name: "Alice", Password: "secret1"},
			wantMsg: "Please include a valid email",
		},
		{
			name:    "short password",
			in:      RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "abc"},
			wantMsg: "Please enter a password with 6 or more characters",
		},
		{
			name:    "missing password",
			in:      RegisterInput{Name: "Alice", Email: "alice@example.com"},
			wantMsg: "Please enter a password with 6 or more characters",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verrs := ValidateRegister(tt.in)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantMsg, verrs[0].Message)
		})
	}
}

func TestValidateRegister_CollectsAllFields(t *testing.T) {
	t.Parallel()

	verrs := ValidateRegister(RegisterInput{})
	require.Len(t, verrs, 3)
	assert.Equal(t, []string{
		"Name is required",
		"Please include a valid email",
		"Please enter a password with 6 or more characters",
	}, verrs.Messages())
}
