package view

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/document"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateStatus
)

type InvoicesModel struct {
	billingService *billing.Service
	scope          billing.Scope

	state    invoicesState
	table    table.Model
	invoices []billing.Invoice
	form     *huh.Form

	// Filter cycling; index 0 is "all".
	statusFilterIdx int
	month           monthFilter

	loading bool
	err     error
	status  string

	formStatus billing.Status
}

func NewInvoicesModel(billingSvc *billing.Service, scope billing.Scope) InvoicesModel {
	columns := []table.Column{
		{Title: "Número", Width: 14},
		{Title: "Emissão", Width: 12},
		{Title: "Cliente", Width: 28},
		{Title: "Representante", Width: 20},
		{Title: "Valor", Width: 16},
		{Title: "Status", Width: 12},
	}

	return InvoicesModel{
		billingService: billingSvc,
		scope:          scope,
		table:          newTable(columns),
		loading:        true,
	}
}

func (m InvoicesModel) Title() string { return "Notas Fiscais" }
func (m InvoicesModel) ShortHelp() string {
	if m.state == invoicesStateStatus {
		return "Enter: confirm | Esc: cancel"
	}
	return "Esc: back | e: status | p: pdf | s: status filter | m: month | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.invoices = msg.invoices
		m.refreshTable()
		return m, nil

	case invoiceSavedMsg:
		m.status = msg.text
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro: %v", msg.err)
		}
		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStateStatus:
		return m.updateStatus(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterStatusMode()
		case "p":
			return m, m.printCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(billing.Statuses) + 1)
			return m, m.loadCmd()
		case "m":
			m.month = m.month.next()
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InvoicesModel) selected() (billing.Invoice, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return billing.Invoice{}, false
	}

	return m.invoices[idx], true
}

func (m InvoicesModel) enterStatusMode() (tea.Model, tea.Cmd) {
	inv, ok := m.selected()
	if !ok {
		return m, nil
	}

	m.formStatus = inv.Status

	options := make([]huh.Option[billing.Status], 0, len(billing.Statuses))
	for _, st := range billing.Statuses {
		options = append(options, huh.NewOption(st.Label(), st))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[billing.Status]().
				Title("Status da nota " + inv.Number).
				Options(options...).
				Value(&m.formStatus),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = invoicesStateStatus
	m.table.Blur()
	return m, m.form.Init()
}

func (m InvoicesModel) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveStatusCmd()
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando notas fiscais...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	statusLabel := "Todos"
	if m.statusFilterIdx > 0 {
		statusLabel = billing.Statuses[m.statusFilterIdx-1].Label()
	}

	var total float64
	for _, inv := range m.invoices {
		total += inv.GrossValue
	}

	header := fmt.Sprintf(
		"Filtro: [s] Status: %s | [m] Mês: %s | %d notas, %s",
		activeStyle(statusLabel),
		activeStyle(m.month.String()),
		len(m.invoices),
		document.FormatBRL(total),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.state == invoicesStateStatus && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m InvoicesModel) filter() billing.ListFilter {
	var f billing.ListFilter

	if m.statusFilterIdx > 0 {
		st := billing.Statuses[m.statusFilterIdx-1]
		f.Status = &st
	}

	if m.month != 0 {
		f.Month = m.month.key()
	}

	return f
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.Number,
			document.FormatDate(inv.IssueDate),
			inv.ClientName,
			inv.RepresentativeName,
			document.FormatBRL(inv.GrossValue),
			inv.Status.Label(),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadInvoicesMsg struct {
	invoices []billing.Invoice
	err      error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.billingService.ListInvoices(ctx, filter)
		if err != nil {
			return loadInvoicesMsg{err: err}
		}

		return loadInvoicesMsg{invoices: m.scope.Apply(invoices)}
	}
}

type invoiceSavedMsg struct {
	text string
	err  error
}

func (m InvoicesModel) saveStatusCmd() tea.Cmd {
	inv, ok := m.selected()
	if !ok {
		return nil
	}

	status := m.formStatus

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.billingService.UpdateStatus(ctx, inv.ID, status); err != nil {
			return invoiceSavedMsg{err: err}
		}

		return invoiceSavedMsg{text: fmt.Sprintf("%s: %s", inv.Number, status.Label())}
	}
}

func (m InvoicesModel) printCmd() tea.Cmd {
	inv, ok := m.selected()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		name := strings.TrimSuffix(document.ExportFilename(inv.Number), ".json") + ".pdf"
		path := filepath.Join(".", name)

		f, err := os.Create(path)
		if err != nil {
			return invoiceSavedMsg{err: err}
		}
		defer f.Close()

		if err := document.PrintPDF(f, inv); err != nil {
			return invoiceSavedMsg{err: err}
		}

		return invoiceSavedMsg{text: "PDF salvo em " + path}
	}
}
