package repository

import (
	"context"
	"errors"

	"devconnect-api/internal/domain/user"
	devconnect_errors "devconnect-api/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts the user and scans back the id assigned by the database.
// A unique violation on email is reported as ErrAlreadyExists so a lost
// duplicate-check race surfaces as an ordinary conflict.
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, avatar_url, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		u.Name, u.Email, u.AvatarURL, u.PasswordHash, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return devconnect_errors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, avatar_url, password_hash, created_at
		 FROM users
		 WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, devconnect_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
