package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
)

func newOrder() *domain.Order {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Order{
		ID:     "o1",
		UserID: "u1",
		Items: []domain.OrderItem{
			{FoodID: "f1", Quantity: 2},
			{FoodID: "f2", Quantity: 1},
		},
		TotalAmount: 26,
		Address:     "1 Main St",
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestOrderRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	o := newOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.UserID, o.TotalAmount, o.Address, "Pending", o.CreatedAt, o.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(o.ID, "f1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(o.ID, "f2", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewMySQLOrderRepo(db).Create(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CreateRollsBackOnItemFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	o := newOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err = NewMySQLOrderRepo(db).Create(context.Background(), o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order item")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_ListByUserPopulatesFoods(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "user_id", "total_amount", "address", "status", "created_at", "updated_at",
		"f.id", "f.name", "f.price", "f.description", "f.image", "quantity",
	}
	rows := sqlmock.NewRows(cols).
		AddRow("o1", "u1", 26.0, "1 Main St", "Pending", now, now,
			"f1", "Pizza", 10.0, "Cheese pizza", "pizza.jpg", 2).
		AddRow("o1", "u1", 26.0, "1 Main St", "Pending", now, now,
			"f2", "Burger", 6.0, nil, nil, 1).
		AddRow("o2", "u1", 8.0, "1 Main St", "Delivered", now.Add(time.Hour), now.Add(time.Hour),
			"f3", "Pasta", 8.0, "Alfredo", nil, 1)

	mock.ExpectQuery("SELECT (.+) FROM orders o").
		WithArgs("u1").
		WillReturnRows(rows)

	out, err := NewMySQLOrderRepo(db).ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 2)

	first := out[0]
	assert.Equal(t, "o1", first.ID)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "Pizza", first.Items[0].Food.Name)
	assert.Equal(t, 10.0, first.Items[0].Food.Price)
	assert.Equal(t, 2, first.Items[0].Quantity)
	assert.Equal(t, "Burger", first.Items[1].Food.Name)

	second := out[1]
	assert.Equal(t, "o2", second.ID)
	assert.Equal(t, domain.StatusDelivered, second.Status)
	require.Len(t, second.Items, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("Delivered", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewMySQLOrderRepo(db).UpdateStatus(context.Background(), "missing", domain.StatusDelivered)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderRepo_UpdateStatusIf(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("Processing", "o1", "Pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("Processing", "o1", "Pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := NewMySQLOrderRepo(db)

	ok, err := r.UpdateStatusIf(context.Background(), "o1", domain.StatusPending, domain.StatusProcessing)
	require.NoError(t, err)
	assert.True(t, ok)

	// second application no longer matches the guard
	ok, err = r.UpdateStatusIf(context.Background(), "o1", domain.StatusPending, domain.StatusProcessing)
	require.NoError(t, err)
	assert.False(t, ok)
}
