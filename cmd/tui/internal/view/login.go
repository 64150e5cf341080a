package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
)

// LoggedInMsg is emitted once the login gate accepts the user.
type LoggedInMsg struct {
	Session *auth.Session
}

type loginFailedMsg struct {
	err error
}

type LoginModel struct {
	authService *auth.Service

	form *huh.Form
	err  error

	email string
	role  auth.Role
}

func NewLoginModel(authSvc *auth.Service) LoginModel {
	m := LoginModel{authService: authSvc, role: auth.RoleRepresentative}
	m.form = m.buildForm()

	return m
}

func (m *LoginModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[auth.Role]().
				Title("Perfil").
				Options(
					huh.NewOption("Representante", auth.RoleRepresentative),
					huh.NewOption("Administrador", auth.RoleAdmin),
				).
				Value(&m.role),

			huh.NewInput().
				Title("Email").
				Placeholder("nome@empresa.com").
				Value(&m.email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("informe o email")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(loginFailedMsg); ok {
		m.err = msg.err
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.loginCmd()
}

func (m LoginModel) loginCmd() tea.Cmd {
	email, role := m.email, m.role

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		session, _, err := m.authService.Login(ctx, email, role)
		if err != nil {
			return loginFailedMsg{err: err}
		}

		return LoggedInMsg{Session: session}
	}
}

func (m LoginModel) View() string {
	content := "Faturamento Novigo\n\n" + m.form.View()

	if m.err != nil {
		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error())
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}
