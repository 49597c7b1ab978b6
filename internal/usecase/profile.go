package usecase

import (
	"context"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

type Profile struct {
	users UserRepo
}

func NewProfile(users UserRepo) *Profile {
	return &Profile{users: users}
}

func (uc *Profile) Get(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *Profile) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	return uc.users.Stats(ctx, userID)
}
