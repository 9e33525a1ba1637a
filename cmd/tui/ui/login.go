package ui

import (
	"fmt"
	"strings"

	"github.com/Varun5711/todolist/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type authSuccessMsg struct {
	session client.Session
}

type authErrorMsg struct {
	err error
}

type LoginModel struct {
	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
	client        *client.Client
}

func NewLoginModel(c *client.Client) *LoginModel {
	return &LoginModel{client: c}
}

func (m *LoginModel) Init() tea.Cmd {
	return nil
}

func (m *LoginModel) Reset() {
	*m = LoginModel{client: m.client}
}

func signInCmd(c *client.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := c.SignIn(email, password)
		if err != nil {
			return authErrorMsg{err: err}
		}
		return authSuccessMsg{session: session}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authSuccessMsg:
		m.loading = false
		m.err = nil
		return m, nil

	case authErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % 2
		case "enter":
			if m.emailInput == "" {
				m.err = fmt.Errorf("email cannot be empty")
				return m, nil
			}
			if m.passwordInput == "" {
				m.err = fmt.Errorf("password cannot be empty")
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, signInCmd(m.client, m.emailInput, m.passwordInput)
		case "ctrl+l":
			m.emailInput = ""
			m.passwordInput = ""
			m.err = nil
		default:
			if m.focusedInput == 0 {
				m.emailInput, _ = editText(m.emailInput, msg)
			} else {
				m.passwordInput, _ = editText(m.passwordInput, msg)
			}
		}
	}
	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("🔐 SIGN IN")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Welcome back! Sign in to see your todos.")

	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginBottom(3).Render(subtitle))
	b.WriteString("\n\n")

	b.WriteString(renderField("Email:", m.emailInput, m.focusedInput == 0, false))
	b.WriteString("\n\n")
	b.WriteString(renderField("Password:", m.passwordInput, m.focusedInput == 1, true))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Signing in...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("tab switch  •  enter sign in  •  ctrl+l clear  •  ctrl+s sign up  •  ctrl+c quit")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
