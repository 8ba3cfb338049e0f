package services

import (
	"context"
	"errors"
	"time"

	"devconnect-api/config"
	"devconnect-api/internal/domain/user"
	"devconnect-api/internal/repository"
	devconnect_errors "devconnect-api/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register runs the registration sequence: validate, check for an existing
// account, derive the avatar, hash the password, persist, sign a token.
// Each step must complete before the next; in particular the insert must
// return the assigned id before the token is signed over it.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if verrs := ValidateRegister(in); len(verrs) > 0 {
		return "", verrs
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, in.Email); err == nil {
		return "", devconnect_errors.ErrAlreadyExists
	} else if !errors.Is(err, devconnect_errors.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	newUser := &user.User{
		Name:         in.Name,
		Email:        in.Email,
		AvatarURL:    GravatarURL(in.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	// The unique constraint on email is the authoritative duplicate guard;
	// a race past the check above comes back as ErrAlreadyExists here.
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return "", err
	}

	return s.signToken(newUser.ID)
}

// ParseToken verifies a token and returns the user id it was issued for.
func (s *UserService) ParseToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, devconnect_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, devconnect_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, devconnect_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, devconnect_errors.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, devconnect_errors.ErrUnauthorized
	}

	return userID, nil
}

func (s *UserService) signToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func HTTPStatus(err error) int {
	var verr ValidationError
	switch {
	case errors.As(err, &verr):
		return 400
	case errors.Is(err, devconnect_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, devconnect_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, devconnect_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, devconnect_errors.ErrNotFound):
		return 404
	default:
		return 500
	}
}
