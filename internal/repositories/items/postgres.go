package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/inventory/internal/common"
	"github.com/dmitrijs2005/inventory/internal/dbx"
	"github.com/dmitrijs2005/inventory/internal/models"
)

// PostgresRepository implements Repository for PostgreSQL through the pgx
// database/sql driver.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Item, error) {
	query :=
		`SELECT id, name, price, quantity, supplier, email, phone FROM items
		 WHERE id = $1`

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Price, &item.Quantity, &item.Supplier, &item.Email, &item.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, item *models.Item) (int64, error) {
	query :=
		`INSERT INTO items (name, price, quantity, supplier, email, phone)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Price, item.Quantity, item.Supplier, item.Email, item.Phone).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.Item) error {
	query :=
		`UPDATE items SET name = $1, price = $2, quantity = $3, supplier = $4, email = $5, phone = $6
		 WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Price, item.Quantity, item.Supplier, item.Email, item.Phone, item.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Item, error) {
	query :=
		`SELECT id, name, price, quantity, supplier, email, phone FROM items
		 ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}
