package repository

import (
	"context"

	"devconnect-api/internal/domain/user"
)

type UserRepository interface {
	// Create inserts u and fills in the store-assigned ID on success.
	Create(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}
