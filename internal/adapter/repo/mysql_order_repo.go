package repo

import (
	"context"
	"database/sql"
	"fmt"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

// Create inserts the order row and its item rows in one transaction. The
// order is the only document written; there is no inventory decrement or
// any other coupled write.
func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO orders (id,user_id,total_amount,address,status,created_at,updated_at)
VALUES (?,?,?,?,?,?,?)`,
		o.ID, o.UserID, o.TotalAmount, o.Address, string(o.Status), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx, `
INSERT INTO order_items (order_id,food_id,quantity) VALUES (?,?,?)`,
			o.ID, it.FoodID, it.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// ListByUser returns the user's orders with each item's food reference
// joined to the full food record. Rows come back ordered by creation time,
// matching insertion order.
func (r *MySQLOrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.PopulatedOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT o.id, o.user_id, o.total_amount, o.address, o.status, o.created_at, o.updated_at,
       f.id, f.name, f.price, f.description, f.image, oi.quantity
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
JOIN foods f ON f.id = oi.food_id
WHERE o.user_id = ?
ORDER BY o.created_at, o.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out   []domain.PopulatedOrder
		index = map[string]int{}
	)
	for rows.Next() {
		var (
			o           domain.PopulatedOrder
			f           domain.Food
			desc, image sql.NullString
			qty         int
			status      string
		)
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.TotalAmount, &o.Address, &status, &o.CreatedAt, &o.UpdatedAt,
			&f.ID, &f.Name, &f.Price, &desc, &image, &qty,
		); err != nil {
			return nil, err
		}
		o.Status = domain.Status(status)
		f.Description = desc.String
		f.Image = image.String

		i, ok := index[o.ID]
		if !ok {
			i = len(out)
			index[o.ID] = i
			out = append(out, o)
		}
		out[i].Items = append(out[i].Items, domain.PopulatedItem{Food: f, Quantity: qty})
	}
	return out, rows.Err()
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id string, to domain.Status) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?`,
		string(to), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatusIf applies a guarded transition; rows == 0 means either the
// order does not exist or its status no longer matches.
func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`,
		string(to), id, string(from))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
