package kafka

import (
	"context"
	"fmt"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

// OrderStatusChangedHandler applies fulfilment status transitions to stored
// orders. The placement flow only ever writes Pending; everything after that
// arrives here.
type OrderStatusChangedHandler struct {
	Repo usecase.OrderRepo
}

func NewOrderStatusChangedHandler(repo usecase.OrderRepo) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{Repo: repo}
}

func (h *OrderStatusChangedHandler) Handle(ctx context.Context, ev usecase.OrderStatusChangedMsg) error {
	to, ok := domain.ParseStatus(ev.Status)
	if !ok {
		return fmt.Errorf("unknown order status %q", ev.Status)
	}

	// Guarded transition from the expected predecessor; if the order has
	// already moved on, fall back to an unconditional set so late events
	// still land.
	from := domain.StatusPending
	if to == domain.StatusDelivered || to == domain.StatusCancelled {
		from = domain.StatusProcessing
	}
	applied, err := h.Repo.UpdateStatusIf(ctx, ev.OrderID, from, to)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}
	return h.Repo.UpdateStatus(ctx, ev.OrderID, to)
}
