package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type memOrderRepo struct {
	statuses map[string]domain.Status
}

func (m *memOrderRepo) Create(context.Context, *domain.Order) error { return nil }
func (m *memOrderRepo) ListByUser(context.Context, string) ([]domain.PopulatedOrder, error) {
	return nil, nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id string, to domain.Status) error {
	if _, ok := m.statuses[id]; !ok {
		return domain.ErrNotFound
	}
	m.statuses[id] = to
	return nil
}

func (m *memOrderRepo) UpdateStatusIf(_ context.Context, id string, from, to domain.Status) (bool, error) {
	if m.statuses[id] != from {
		return false, nil
	}
	m.statuses[id] = to
	return true, nil
}

func TestStatusHandler_GuardedTransition(t *testing.T) {
	repo := &memOrderRepo{statuses: map[string]domain.Status{"o1": domain.StatusPending}}
	h := NewOrderStatusChangedHandler(repo)

	err := h.Handle(context.Background(), usecase.OrderStatusChangedMsg{OrderID: "o1", Status: "Processing"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, repo.statuses["o1"])

	err = h.Handle(context.Background(), usecase.OrderStatusChangedMsg{OrderID: "o1", Status: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, repo.statuses["o1"])
}

func TestStatusHandler_LateEventStillLands(t *testing.T) {
	// Delivered arriving while the order is still Pending misses the guard
	// but is applied unconditionally.
	repo := &memOrderRepo{statuses: map[string]domain.Status{"o1": domain.StatusPending}}
	h := NewOrderStatusChangedHandler(repo)

	err := h.Handle(context.Background(), usecase.OrderStatusChangedMsg{OrderID: "o1", Status: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, repo.statuses["o1"])
}

func TestStatusHandler_UnknownStatus(t *testing.T) {
	repo := &memOrderRepo{statuses: map[string]domain.Status{"o1": domain.StatusPending}}
	h := NewOrderStatusChangedHandler(repo)

	err := h.Handle(context.Background(), usecase.OrderStatusChangedMsg{OrderID: "o1", Status: "EXPLODED"})
	require.Error(t, err)
	assert.Equal(t, domain.StatusPending, repo.statuses["o1"], "bad event must not move the order")
}
