package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/inventory/internal/common"
	"github.com/dmitrijs2005/inventory/internal/config"
	"github.com/dmitrijs2005/inventory/internal/editor"
	"github.com/dmitrijs2005/inventory/internal/logging"
	"github.com/dmitrijs2005/inventory/internal/money"
	"github.com/dmitrijs2005/inventory/internal/securestore"
	"github.com/dmitrijs2005/inventory/internal/services"
	"github.com/dmitrijs2005/inventory/internal/storage"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	repos     *storage.Repositories
	store     *securestore.EncryptedStore
	format    *money.Formatter
	editor    *editor.Editor
	settings  *services.SettingsService
	inventory *services.InventoryService
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens storage and unlocks the preference store. When the
// configuration carries no passphrase the user is prompted for one.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	format, err := money.NewFormatter(c.Locale, c.Currency)
	if err != nil {
		return nil, err
	}

	openCtx, cancel := context.WithTimeout(ctx, c.OperationTimeout)
	defer cancel()

	repos, err := storage.Open(openCtx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	passphrase := []byte(c.Passphrase)
	if len(passphrase) == 0 {
		passphrase, err = GetPassword(out, "Passphrase")
		if err != nil {
			_ = repos.Close()
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
	}
	defer common.WipeByteArray(passphrase)

	// key derivation is not bounded by the operation timeout
	store, err := securestore.Open(ctx, repos.DB, repos.MetadataFactory(), passphrase)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	return &App{
		config:    c,
		log:       log,
		repos:     repos,
		store:     store,
		format:    format,
		editor:    editor.New(repos.Items, log),
		settings:  services.NewSettingsService(store, log),
		inventory: services.NewInventoryService(repos.Items, store, format, log),
		reader:    bufio.NewReader(in),
		out:       out,
	}, nil
}

// Run loads the preferences and serves commands until exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.withTimeout(ctx, func(ctx context.Context) error {
		_, err := a.settings.Load(ctx)
		return err
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Inventory (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	a.store.Close()
	return a.repos.Close()
}

func (a *App) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.OperationTimeout)
	defer cancel()
	return fn(ctx)
}

func (a *App) getStatus() string {
	t := a.settings.State().Toggles
	s := a.format.Currency()
	if t.Hide {
		s += " hidden"
	}
	if t.Prohibit {
		s += " no-share"
	}
	return "(" + s + ")"
}
