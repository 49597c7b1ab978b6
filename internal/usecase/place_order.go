package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

type PlaceOrderInput struct {
	UserID      string
	Items       []domain.OrderItem
	TotalAmount float64
	Address     string
}

type PlaceOrder struct {
	repo OrderRepo
}

func NewPlaceOrder(repo OrderRepo) *PlaceOrder {
	return &PlaceOrder{repo: repo}
}

// Execute validates and persists a new order owned by the authenticated
// user. Items, totalAmount and address are stored verbatim; the total is
// NOT recomputed from catalog prices (client-trusted, a documented gap).
// There is no idempotency key either: a double submit creates two orders.
func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Items:       in.Items,
		TotalAmount: in.TotalAmount,
		Address:     in.Address,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
