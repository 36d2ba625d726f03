package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/inventory/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// os.Args is filtered with flagx.FilterArgs so that flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f", "-l", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "d", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "f", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "locale used to format prices")
	fs.StringVar(&cfg.Currency, "m", cfg.Currency, "ISO 4217 currency code")
	timeout := fs.Int("t", int(cfg.OperationTimeout.Seconds()), "operation timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.OperationTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
