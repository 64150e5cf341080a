package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/faturamento/internal/billing/store"
	"github.com/MrJamesThe3rd/faturamento/internal/config"
	"github.com/MrJamesThe3rd/faturamento/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "faturamento-admin",
	Short: "Maintenance commands for the Faturamento record store",
	Long: `faturamento-admin runs the one-off jobs of the billing back office
against the configured database: the legacy migration, legacy dump
imports, invoice documents and the dashboard spreadsheet.

Database settings are read from the environment (DB_HOST, DB_PORT,
DB_USER, DB_PASSWORD, DB_NAME) and from a .env file when present.`,
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// openStore connects to the database and returns the record store. The
// caller closes the returned db.
func openStore(ctx context.Context) (*store.Store, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return store.New(db), db, nil
}
