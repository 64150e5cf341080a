package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/faturamento/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/billing/store"
	"github.com/MrJamesThe3rd/faturamento/internal/config"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	"github.com/MrJamesThe3rd/faturamento/internal/database"
	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

type model struct {
	billingService   *billing.Service
	dashboardService *dashboard.Service
	authService      *auth.Service

	session     *auth.Session
	currentView View

	loginView     view.LoginModel
	dashboardView view.DashboardModel
	invoicesView  view.InvoicesModel
}

type View int

const (
	ViewLogin     View = 0
	ViewMenu      View = 1
	ViewDashboard View = 2
	ViewInvoices  View = 3
)

func initialModel() model {
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

	ctx := context.Background()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to prepare database", "error", err)
		os.Exit(1)
	}

	records := store.New(db)

	if cfg.Migration.OnStartup {
		if _, err := migration.NewService(records).RunOnce(ctx); err != nil {
			slog.Error("failed to migrate legacy records", "error", err)
			os.Exit(1)
		}
	}

	authSvc := auth.NewService(records, cfg.Auth.Secret, cfg.Auth.TokenTTL)

	m := model{
		billingService:   billing.NewService(records, billing.WithStrictStatus(cfg.Billing.StrictStatus)),
		dashboardService: dashboard.NewService(records),
		authService:      authSvc,
		currentView:      ViewLogin,
		loginView:        view.NewLoginModel(authSvc),
	}

	// Resume the stored session, if any.
	if session, err := authSvc.Current(ctx); err == nil {
		m.session = session
		m.currentView = ViewMenu
	}

	return m
}

func (m model) Init() tea.Cmd {
	if m.currentView == ViewLogin {
		return m.loginView.Init()
	}

	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			scope := m.session.Scope()

			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.dashboardService, scope)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.billingService, scope)

				return m, m.invoicesView.Init()
			case "l":
				if err := m.authService.Logout(context.Background()); err != nil {
					slog.Error("failed to log out", "error", err)
				}

				m.session = nil
				m.currentView = ViewLogin
				m.loginView = view.NewLoginModel(m.authService)

				return m, m.loginView.Init()
			}
		}
	case view.LoggedInMsg:
		m.session = msg.Session
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		who := m.session.Name
		if m.session.IsAdmin() {
			who += " (administrador)"
		}

		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Faturamento Novigo | %s\n\n", who) +
				"1. Dashboard\n" +
				"2. Notas Fiscais\n\n" +
				"l. Sair da conta\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View() + "\n" + m.dashboardView.ShortHelp()
	case ViewInvoices:
		return m.invoicesView.View() + "\n" + m.invoicesView.ShortHelp()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
