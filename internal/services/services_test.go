package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/inventory/internal/dbx"
	"github.com/dmitrijs2005/inventory/internal/logging"
	"github.com/dmitrijs2005/inventory/internal/money"
	"github.com/dmitrijs2005/inventory/internal/securestore"
	"github.com/dmitrijs2005/inventory/internal/storage"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repos *storage.Repositories
	store *securestore.EncryptedStore
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repos, err := storage.Open(ctx, dbx.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	store, err := securestore.Open(ctx, repos.DB, repos.MetadataFactory(), []byte("pw"))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	return &fixture{repos: repos, store: store}
}

func (f *fixture) settings() *SettingsService {
	return NewSettingsService(f.store, logging.Discard())
}

func (f *fixture) inventory() *InventoryService {
	return NewInventoryService(f.repos.Items, f.store, money.MustFormatter("en-US", "USD"), logging.Discard())
}
