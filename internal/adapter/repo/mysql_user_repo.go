package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type MySQLUserRepo struct{ db *sql.DB }

func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{db: db} }

func (r *MySQLUserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id,username,password_hash,created_at,updated_at)
VALUES (?,?,?,?,?)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *MySQLUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash, created_at, updated_at
FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *MySQLUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash, created_at, updated_at
FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// Stats aggregates the user's order activity. SUM comes back NULL for a
// user with no orders, hence the COALESCE.
func (r *MySQLUserRepo) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var st domain.UserStats
	st.MemberSince = u.CreatedAt
	row := r.db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
FROM orders WHERE user_id = ?`, userID)
	if err := row.Scan(&st.TotalOrders, &st.TotalSpent); err != nil {
		return nil, err
	}
	return &st, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ usecase.UserRepo = (*MySQLUserRepo)(nil)
