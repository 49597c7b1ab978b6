package usecase

import (
	"context"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

type ListMyOrders struct {
	repo OrderRepo
}

func NewListMyOrders(repo OrderRepo) *ListMyOrders {
	return &ListMyOrders{repo: repo}
}

// Execute returns every order owned by the user, each item's food reference
// resolved to the full food record. Insertion order, no explicit sort beyond
// creation time.
func (uc *ListMyOrders) Execute(ctx context.Context, userID string) ([]domain.PopulatedOrder, error) {
	return uc.repo.ListByUser(ctx, userID)
}
