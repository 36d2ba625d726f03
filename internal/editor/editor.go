// Package editor is the entry/edit state engine for inventory items.
//
// A State pairs an item draft with its validity. The pure functions NewEntry,
// UpdateDraft and ValidateAll derive states without I/O; an Editor adds the
// two operations that reach the repository, LoadForEdit and Save. Session
// wraps both in the lifecycle of a single entry or edit flow.
package editor

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/inventory/internal/common"
	"github.com/dmitrijs2005/inventory/internal/logging"
	"github.com/dmitrijs2005/inventory/internal/models"
	"github.com/dmitrijs2005/inventory/internal/repositories/items"
	"github.com/dmitrijs2005/inventory/internal/validation"
)

var (
	ErrValidationRejected = common.ErrorValidationRejected
	ErrNotFound           = items.ErrNotFound
)

// State is an immutable snapshot of an entry or edit form.
type State struct {
	Details models.ItemDetails
	IsValid bool
}

// Repository is the part of items.Repository the editor uses.
type Repository interface {
	Get(ctx context.Context, id int64) (*models.Item, error)
	Insert(ctx context.Context, item *models.Item) (int64, error)
	Update(ctx context.Context, item *models.Item) error
}

// ValidateAll reports whether d may be persisted.
func ValidateAll(d models.ItemDetails) bool {
	return validation.Item(d)
}

// NewEntry starts a new item from prefill, or from an empty draft when
// prefill is nil.
func NewEntry(prefill *models.ItemDetails) State {
	var d models.ItemDetails
	if prefill != nil {
		d = *prefill
	}
	d.ID = models.NewItemID
	return State{Details: d, IsValid: ValidateAll(d)}
}

// UpdateDraft replaces the draft of s and recomputes validity. The result
// depends on d only.
func UpdateDraft(_ State, d models.ItemDetails) State {
	return State{Details: d, IsValid: ValidateAll(d)}
}

type Editor struct {
	repo Repository
	log  logging.Logger
}

func New(repo Repository, log logging.Logger) *Editor {
	return &Editor{repo: repo, log: log}
}

// LoadForEdit fetches item id and returns it as a valid state. Repository
// errors, ErrNotFound included, are passed through as is.
func (e *Editor) LoadForEdit(ctx context.Context, id int64) (State, error) {
	item, err := e.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			e.log.Debug(ctx, "item not found", "id", id)
		} else {
			e.log.Error(ctx, "load item failed", "id", id, "error", err)
		}
		return State{}, err
	}
	return State{Details: item.ToItemDetails(), IsValid: true}, nil
}

// Save validates the draft again and persists it: drafts carrying
// models.NewItemID are inserted, others update the existing item. It returns
// the id of the stored item. A draft that fails validation yields
// ErrValidationRejected and the repository is not called. Repository errors
// are logged and returned as they are.
func (e *Editor) Save(ctx context.Context, s State) (int64, error) {
	if !ValidateAll(s.Details) {
		return 0, ErrValidationRejected
	}

	item := s.Details.ToItem()

	if item.ID == models.NewItemID {
		id, err := e.repo.Insert(ctx, &item)
		if err != nil {
			e.log.Error(ctx, "insert item failed", "error", err)
			return 0, err
		}
		e.log.Info(ctx, "item inserted", "id", id)
		return id, nil
	}

	if err := e.repo.Update(ctx, &item); err != nil {
		e.log.Error(ctx, "update item failed", "id", item.ID, "error", err)
		return 0, err
	}
	e.log.Info(ctx, "item updated", "id", item.ID)
	return item.ID, nil
}
