package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/billing/store"
	"github.com/MrJamesThe3rd/faturamento/internal/config"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	"github.com/MrJamesThe3rd/faturamento/internal/database"
	apiHttp "github.com/MrJamesThe3rd/faturamento/internal/http"
	authHandler "github.com/MrJamesThe3rd/faturamento/internal/http/auth"
	dashboardHandler "github.com/MrJamesThe3rd/faturamento/internal/http/dashboard"
	invoiceHandler "github.com/MrJamesThe3rd/faturamento/internal/http/invoice"
	migrationHandler "github.com/MrJamesThe3rd/faturamento/internal/http/migration"
	"github.com/MrJamesThe3rd/faturamento/internal/http/registry"
	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to prepare database", "error", err)
		os.Exit(1)
	}

	var defaults *billing.Settings

	if cfg.Billing.SettingsFile != "" {
		defaults, err = billing.LoadSettingsFile(cfg.Billing.SettingsFile)
		if err != nil {
			slog.Error("failed to load settings file", "error", err)
			os.Exit(1)
		}
	}

	records := store.New(db)

	var (
		billingService = billing.NewService(records,
			billing.WithStrictStatus(cfg.Billing.StrictStatus),
			billing.WithDefaultSettings(defaults),
		)
		dashboardService = dashboard.NewService(records)
		authService      = auth.NewService(records, cfg.Auth.Secret, cfg.Auth.TokenTTL)
		migrationService = migration.NewService(records)
	)

	if cfg.Migration.OnStartup {
		ran, err := migrationService.RunOnce(ctx)
		if err != nil {
			slog.Error("failed to migrate legacy records", "error", err)
			os.Exit(1)
		}

		slog.Info("legacy migration checked", "ran", ran)
	}

	router := apiHttp.New(
		apiHttp.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Timeout:        cfg.Server.Timeout,
			Verifier:       authService,
		},
		authHandler.NewHandler(authService),
		registry.NewHandler(billingService),
		invoiceHandler.NewHandler(billingService),
		dashboardHandler.NewHandler(dashboardService),
		migrationHandler.NewHandler(migrationService),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
