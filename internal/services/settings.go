package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/inventory/internal/common"
	"github.com/dmitrijs2005/inventory/internal/logging"
	"github.com/dmitrijs2005/inventory/internal/models"
	"github.com/dmitrijs2005/inventory/internal/securestore"
	"github.com/dmitrijs2005/inventory/internal/validation"
)

// Toggles are the boolean preferences.
type Toggles struct {
	Use      bool // pre-fill new entries with the supplier defaults
	Hide     bool // mask supplier fields on display
	Prohibit bool // refuse to share items
}

func DefaultToggles() Toggles { return Toggles{Use: true} }

// SettingsState is the settings form. IsValid tells whether Defaults may be
// saved; it is cleared after a successful save.
type SettingsState struct {
	Defaults models.SupplierDetails
	IsValid  bool
	Toggles  Toggles
}

type SettingsService struct {
	store securestore.Store
	log   logging.Logger

	mu    sync.Mutex
	state SettingsState
}

func NewSettingsService(store securestore.Store, log logging.Logger) *SettingsService {
	return &SettingsService{
		store: store,
		log:   log,
		state: SettingsState{Toggles: DefaultToggles()},
	}
}

func readSupplier(ctx context.Context, store securestore.Store) (models.SupplierDetails, error) {
	var d models.SupplierDetails
	var err error
	if d.Supplier, err = store.GetString(ctx, KeySupplier, ""); err != nil {
		return d, err
	}
	if d.Email, err = store.GetString(ctx, KeyEmail, ""); err != nil {
		return d, err
	}
	if d.Phone, err = store.GetString(ctx, KeyPhone, ""); err != nil {
		return d, err
	}
	return d, nil
}

func readToggles(ctx context.Context, store securestore.Store) (Toggles, error) {
	t := DefaultToggles()
	var err error
	if t.Use, err = store.GetBool(ctx, KeyUse, t.Use); err != nil {
		return t, err
	}
	if t.Hide, err = store.GetBool(ctx, KeyHide, t.Hide); err != nil {
		return t, err
	}
	if t.Prohibit, err = store.GetBool(ctx, KeyProhibit, t.Prohibit); err != nil {
		return t, err
	}
	return t, nil
}

// Load reads the stored preferences into the form.
func (s *SettingsService) Load(ctx context.Context) (SettingsState, error) {
	d, err := readSupplier(ctx, s.store)
	if err != nil {
		return SettingsState{}, fmt.Errorf("load supplier defaults: %w", err)
	}
	t, err := readToggles(ctx, s.store)
	if err != nil {
		return SettingsState{}, fmt.Errorf("load toggles: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SettingsState{Defaults: d, Toggles: t}
	return s.state, nil
}

func (s *SettingsService) State() SettingsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update replaces the supplier defaults in the form and recomputes validity.
func (s *SettingsService) Update(d models.SupplierDetails) SettingsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Defaults = d
	s.state.IsValid = validation.Supplier(d)
	return s.state
}

// SaveDefaults stores the supplier defaults of the form.
func (s *SettingsService) SaveDefaults(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.state.Defaults
	if !validation.Supplier(d) {
		return common.ErrorValidationRejected
	}

	b := securestore.NewBatch().
		PutString(KeySupplier, d.Supplier).
		PutString(KeyEmail, d.Email).
		PutString(KeyPhone, d.Phone)
	if err := s.store.Apply(ctx, b); err != nil {
		s.log.Error(ctx, "save supplier defaults failed", "error", err)
		return fmt.Errorf("save supplier defaults: %w", err)
	}

	s.state.IsValid = false
	s.log.Info(ctx, "supplier defaults saved")
	return nil
}

// Toggle flips the named toggle in the form.
func (s *SettingsService) Toggle(key string) (SettingsState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case KeyUse:
		s.state.Toggles.Use = !s.state.Toggles.Use
	case KeyHide:
		s.state.Toggles.Hide = !s.state.Toggles.Hide
	case KeyProhibit:
		s.state.Toggles.Prohibit = !s.state.Toggles.Prohibit
	default:
		return s.state, fmt.Errorf("%w %q", ErrUnknownSetting, key)
	}
	return s.state, nil
}

// SaveToggles stores all three toggles of the form.
func (s *SettingsService) SaveToggles(ctx context.Context) error {
	s.mu.Lock()
	t := s.state.Toggles
	s.mu.Unlock()

	b := securestore.NewBatch().
		PutBool(KeyUse, t.Use).
		PutBool(KeyHide, t.Hide).
		PutBool(KeyProhibit, t.Prohibit)
	if err := s.store.Apply(ctx, b); err != nil {
		s.log.Error(ctx, "save toggles failed", "error", err)
		return fmt.Errorf("save toggles: %w", err)
	}
	s.log.Info(ctx, "toggles saved", "use", t.Use, "hide", t.Hide, "prohibit", t.Prohibit)
	return nil
}

// EntryPrefill returns the draft a new entry starts from: the stored
// supplier defaults when "use" is on, nil otherwise.
func (s *SettingsService) EntryPrefill(ctx context.Context) (*models.ItemDetails, error) {
	use, err := s.store.GetBool(ctx, KeyUse, DefaultToggles().Use)
	if err != nil {
		return nil, err
	}
	if !use {
		return nil, nil
	}
	d, err := readSupplier(ctx, s.store)
	if err != nil {
		return nil, err
	}
	prefill := models.ItemDetailsFromSupplier(d)
	return &prefill, nil
}
