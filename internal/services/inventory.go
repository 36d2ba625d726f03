package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/inventory/internal/logging"
	"github.com/dmitrijs2005/inventory/internal/models"
	"github.com/dmitrijs2005/inventory/internal/repositories/items"
	"github.com/dmitrijs2005/inventory/internal/securestore"
)

// SupplierContacts are the recipients an item can be shared with.
var SupplierContacts = []string{
	"Tereasa", "Chang", "Kory", "Clare", "Landon",
	"Kyle", "Deana", "Daria", "Melisa", "Sammie",
}

// ItemView is a row of the inventory list.
type ItemView struct {
	ID       int64
	Name     string
	Quantity int32
	Price    string
}

type InventoryService struct {
	repo   items.Repository
	store  securestore.Store
	format models.PriceFormatter
	log    logging.Logger
}

func NewInventoryService(repo items.Repository, store securestore.Store, format models.PriceFormatter, log logging.Logger) *InventoryService {
	return &InventoryService{repo: repo, store: store, format: format, log: log}
}

func (s *InventoryService) List(ctx context.Context) ([]ItemView, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	result := make([]ItemView, 0, len(rows))
	for _, it := range rows {
		result = append(result, ItemView{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.DisplayPrice(s.format),
		})
	}
	return result, nil
}

// Details returns the item as a draft, with supplier fields masked when the
// hide toggle is on.
func (s *InventoryService) Details(ctx context.Context, id int64) (models.ItemDetails, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.ItemDetails{}, err
	}

	d := it.ToItemDetails()
	hide, err := s.store.GetBool(ctx, KeyHide, DefaultToggles().Hide)
	if err != nil {
		return models.ItemDetails{}, err
	}
	if hide {
		d = d.HideSupplier()
	}
	return d, nil
}

// Summary renders Details as text.
func (s *InventoryService) Summary(ctx context.Context, id int64) (string, error) {
	d, err := s.Details(ctx, id)
	if err != nil {
		return "", err
	}
	return d.Summary(s.format), nil
}

// Sell takes one unit out of stock.
func (s *InventoryService) Sell(ctx context.Context, id int64) (models.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if it.Quantity <= 0 {
		return *it, ErrOutOfStock
	}

	it.Quantity--
	if err := s.repo.Update(ctx, it); err != nil {
		s.log.Error(ctx, "sell failed", "id", id, "error", err)
		return models.Item{}, fmt.Errorf("sell item: %w", err)
	}
	s.log.Info(ctx, "item sold", "id", id, "quantity", it.Quantity)
	return *it, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "item deleted", "id", id)
	return nil
}

// Share renders the item summary addressed to SupplierContacts[contact].
func (s *InventoryService) Share(ctx context.Context, id int64, contact int) (string, error) {
	prohibit, err := s.store.GetBool(ctx, KeyProhibit, DefaultToggles().Prohibit)
	if err != nil {
		return "", err
	}
	if prohibit {
		return "", ErrSharingProhibited
	}
	if contact < 0 || contact >= len(SupplierContacts) {
		return "", fmt.Errorf("%w: %d", ErrUnknownContact, contact)
	}

	summary, err := s.Summary(ctx, id)
	if err != nil {
		return "", err
	}

	name := SupplierContacts[contact]
	s.log.Debug(ctx, "item shared", "id", id, "contact", name)
	return "Sent to " + name + " \n" + summary, nil
}
