// Package items provides persistence for inventory items.
//
// Repository is the storage collaborator used by the editor and the
// inventory service. Two implementations are provided: SQLiteRepository for
// the default local database and PostgresRepository for a shared server.
// Both work over a dbx.DBTX, so they can be bound to a *sql.DB or to a
// *sql.Tx.
//
// Lookups of absent identifiers return ErrNotFound.
package items

import (
	"context"

	"github.com/dmitrijs2005/inventory/internal/common"
	"github.com/dmitrijs2005/inventory/internal/models"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = common.ErrorNotFound

// Repository describes CRUD operations on items.
type Repository interface {
	// Get returns the item with the given id.
	Get(ctx context.Context, id int64) (*models.Item, error)

	// Insert stores a new item and returns its assigned id. The ID field of
	// item is ignored.
	Insert(ctx context.Context, item *models.Item) (int64, error)

	// Update overwrites an existing item identified by item.ID.
	Update(ctx context.Context, item *models.Item) error

	// List returns all items ordered by name.
	List(ctx context.Context) ([]models.Item, error)

	// Delete removes the item with the given id.
	Delete(ctx context.Context, id int64) error
}
