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

// SQLiteRepository implements Repository for SQLite.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Item, error) {
	query := `SELECT id, name, price, quantity, supplier, email, phone FROM items WHERE id = ?`

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Price, &item.Quantity, &item.Supplier, &item.Email, &item.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, item *models.Item) (int64, error) {
	query := `INSERT INTO items (name, price, quantity, supplier, email, phone) VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Price, item.Quantity, item.Supplier, item.Email, item.Phone)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, item *models.Item) error {
	query := `UPDATE items SET name = ?, price = ?, quantity = ?, supplier = ?, email = ?, phone = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		item.Name, item.Price, item.Quantity, item.Supplier, item.Email, item.Phone, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", item.ID, err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, price, quantity, supplier, email, phone FROM items ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return expectOneRow(res)
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var result []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity, &item.Supplier, &item.Email, &item.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item rows: %w", err)
	}
	return result, nil
}

func expectOneRow(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}
