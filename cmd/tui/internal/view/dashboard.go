package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	"github.com/MrJamesThe3rd/faturamento/internal/document"
)

type dashboardTab int

const (
	tabMonthly dashboardTab = iota
	tabClients
	tabRepresentatives
	tabCompanies
)

var tabTitles = []string{"Mensal", "Clientes", "Representantes", "Empresas"}

type DashboardModel struct {
	dashboardService *dashboard.Service
	scope            billing.Scope

	tab   dashboardTab
	month monthFilter
	table table.Model

	summary *dashboard.Summary
	loading bool
	err     error
}

func NewDashboardModel(dashboardSvc *dashboard.Service, scope billing.Scope) DashboardModel {
	return DashboardModel{
		dashboardService: dashboardSvc,
		scope:            scope,
		table:            newTable(nil),
		loading:          true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	return "Esc: back | tab: next view | m: month (clientes) | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.summary = msg.summary
		m.table.SetRows(nil)
		m.table.SetColumns(msg.columns)
		m.table.SetRows(msg.rows)
		m.table.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "tab":
			m.tab = (m.tab + 1) % dashboardTab(len(tabTitles))
			m.loading = true
			return m, m.loadCmd()
		case "m":
			if m.tab != tabClients {
				break
			}
			m.month = m.month.next()
			m.loading = true
			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if dashboardTab(i) == m.tab {
			t = activeStyle("[" + t + "]")
		}
		tabs[i] = t
	}

	header := strings.Join(tabs, "  ")
	if m.tab == tabClients {
		header += "  | [m] Mês: " + activeStyle(m.month.String())
	}

	summary := ""
	if s := m.summary; s != nil {
		summary = fmt.Sprintf(
			"Faturamento: %s | Notas: %d | Colaboradores: %d | Pagas: %d | Crescimento: %.1f%%",
			document.FormatBRL(s.TotalRevenue), s.InvoiceCount, s.CollaboratorCount,
			s.StatusCounts[billing.StatusPaid], s.Growth,
		)
	}

	body := boxed(m.table.View())
	if m.loading {
		body = "Carregando..."
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().Faint(true).PaddingBottom(1).Render(summary),
		body,
	))
}

// Messages

type loadDashboardMsg struct {
	summary *dashboard.Summary
	columns []table.Column
	rows    []table.Row
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	tab, month, scope := m.tab, m.month, m.scope

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.dashboardService.Summary(ctx, scope)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		msg := loadDashboardMsg{summary: summary}

		switch tab {
		case tabMonthly:
			buckets, err := m.dashboardService.Monthly(ctx, scope)
			msg.err = err
			msg.columns = []table.Column{{Title: "Mês", Width: 12}, {Title: "Notas", Width: 8}, {Title: "Valor", Width: 18}}

			for _, b := range buckets {
				msg.rows = append(msg.rows, table.Row{dashboard.MonthName(b.Month), strconv.Itoa(b.Count), document.FormatBRL(b.Value)})
			}
		case tabClients:
			groups, err := m.dashboardService.MonthDetails(ctx, scope, month.key())
			msg.err = err
			msg.columns = []table.Column{{Title: "Cliente", Width: 32}, {Title: "Notas", Width: 8}, {Title: "Valor", Width: 18}}

			for _, g := range groups {
				msg.rows = append(msg.rows, table.Row{g.Client, strconv.Itoa(g.InvoiceCount), document.FormatBRL(g.TotalValue)})
			}
		case tabRepresentatives:
			stats, err := m.dashboardService.Representatives(ctx, scope)
			msg.err = err
			msg.columns = []table.Column{{Title: "Representante", Width: 22}, {Title: "Notas", Width: 8}, {Title: "Valor", Width: 18}, {Title: "Clientes", Width: 40}}

			for _, s := range stats {
				msg.rows = append(msg.rows, table.Row{s.Representative.Name, strconv.Itoa(s.InvoiceCount), document.FormatBRL(s.TotalValue), strings.Join(s.Clients, ", ")})
			}
		case tabCompanies:
			companies, err := m.dashboardService.Companies(ctx, scope)
			msg.err = err
			msg.columns = []table.Column{{Title: "Empresa", Width: 32}, {Title: "Notas", Width: 8}, {Title: "Valor", Width: 18}, {Title: "Representantes", Width: 30}}

			for _, c := range companies {
				msg.rows = append(msg.rows, table.Row{c.Client, strconv.Itoa(c.InvoiceCount), document.FormatBRL(c.TotalValue), strings.Join(c.Representatives, ", ")})
			}
		}

		return msg
	}
}
