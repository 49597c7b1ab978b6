package usecase

import (
	"context"
	"time"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

type FoodRepo interface {
	List(ctx context.Context) ([]domain.Food, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.PopulatedOrder, error)
	UpdateStatus(ctx context.Context, id string, to domain.Status) error
	UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Stats(ctx context.Context, userID string) (*domain.UserStats, error)
}

// FoodCache fronts the catalog; misses and failures fall through to the repo.
type FoodCache interface {
	Get(ctx context.Context) ([]domain.Food, bool, error)
	Set(ctx context.Context, foods []domain.Food, ttl time.Duration) error
}

// TokenIssuer is the credential-service side the auth usecase consumes.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
