package repo

import (
	"context"
	"database/sql"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type MySQLFoodRepo struct{ db *sql.DB }

func NewMySQLFoodRepo(db *sql.DB) *MySQLFoodRepo { return &MySQLFoodRepo{db: db} }

func (r *MySQLFoodRepo) List(ctx context.Context) ([]domain.Food, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, price, description, image FROM foods ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Food
	for rows.Next() {
		var (
			f           domain.Food
			desc, image sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.Price, &desc, &image); err != nil {
			return nil, err
		}
		f.Description = desc.String
		f.Image = image.String
		out = append(out, f)
	}
	return out, rows.Err()
}

// Replace wipes the catalog and inserts the given foods; used by the seeder.
func (r *MySQLFoodRepo) Replace(ctx context.Context, foods []domain.Food) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM foods`); err != nil {
		return err
	}
	for _, f := range foods {
		_, err := tx.ExecContext(ctx, `
INSERT INTO foods (id,name,price,description,image) VALUES (?,?,?,?,?)`,
			f.ID, f.Name, f.Price, f.Description, f.Image)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ usecase.FoodRepo = (*MySQLFoodRepo)(nil)
