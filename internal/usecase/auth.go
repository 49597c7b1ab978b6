package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/security"
)

type Auth struct {
	users  UserRepo
	tokens TokenIssuer
}

func NewAuth(users UserRepo, tokens TokenIssuer) *Auth {
	return &Auth{users: users, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
// Returns domain.ErrUserExists when the username is taken.
func (uc *Auth) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingFields
	}

	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrUserExists
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return uc.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login checks credentials and issues a bearer token. Unknown username and
// wrong password are deliberately indistinguishable: both come back as
// domain.ErrInvalidCredentials.
func (uc *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !security.CheckPassword(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}
	return uc.tokens.Issue(user.ID)
}
