package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate legacy records to the current schema, once",
	Long: `Reshapes the legacy "colaboradores" and "notasFiscais" collections into
representatives, companies, collaborators and invoices, writes the default
settings and sets the completion flag. Does nothing when the flag is set.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		ran, err := migration.NewService(records).RunOnce(ctx)
		if err != nil {
			return err
		}

		if !ran {
			fmt.Fprintln(cmd.OutOrStdout(), "migration already completed")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migration completed")

		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the legacy migration has run",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		done, err := migration.NewService(records).Completed(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "completed: %t\n", done)

		return nil
	},
}

var importLegacyCmd = &cobra.Command{
	Use:   "import-legacy <dump.json>",
	Short: "Load a legacy JSON dump into the record store",
	Long: `Reads a JSON object holding the legacy "colaboradores" and "notasFiscais"
arrays, in UTF-8, UTF-16 or Windows-1252, and stores them under their legacy
keys so that migrate can pick them up.`,
	Example: `  faturamento-admin import-legacy backup.json
  faturamento-admin import-legacy backup.json --migrate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		runMigration, _ := cmd.Flags().GetBool("migrate")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening dump: %w", err)
		}
		defer f.Close()

		records, db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := migration.NewService(records)

		summary, err := svc.ImportLegacy(ctx, f)
		if err != nil {
			return err
		}

		slog.Info("legacy dump imported",
			"charset", summary.Charset,
			"collaborators", summary.Collaborators,
			"invoices", summary.Invoices,
		)

		if !runMigration {
			return nil
		}

		ran, err := svc.RunOnce(ctx)
		if err != nil {
			return err
		}

		slog.Info("legacy migration checked", "ran", ran)

		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)

	importLegacyCmd.Flags().Bool("migrate", false, "Run the migration right after importing")
	rootCmd.AddCommand(importLegacyCmd)
}
