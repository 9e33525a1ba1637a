package ui

import (
	"fmt"
	"strings"

	"github.com/Varun5711/todolist/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type SignupModel struct {
	nameInput     string
	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
	client        *client.Client
}

func NewSignupModel(c *client.Client) *SignupModel {
	return &SignupModel{client: c}
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

func signUpCmd(c *client.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := c.SignUp(name, email, password)
		if err != nil {
			return authErrorMsg{err: err}
		}
		return authSuccessMsg{session: session}
	}
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "shift+tab":
			m.focusedInput = (m.focusedInput + 2) % 3
		case "enter":
			if m.nameInput == "" || m.emailInput == "" || m.passwordInput == "" {
				m.err = fmt.Errorf("all fields are required")
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, signUpCmd(m.client, m.nameInput, m.emailInput, m.passwordInput)
		case "ctrl+l":
			m.nameInput = ""
			m.emailInput = ""
			m.passwordInput = ""
			m.err = nil
		default:
			switch m.focusedInput {
			case 0:
				m.nameInput, _ = editText(m.nameInput, msg)
			case 1:
				m.emailInput, _ = editText(m.emailInput, msg)
			case 2:
				m.passwordInput, _ = editText(m.passwordInput, msg)
			}
		}
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("✨ SIGN UP")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Create an account to start tracking todos.")

	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginBottom(3).Render(subtitle))
	b.WriteString("\n\n")

	b.WriteString(renderField("Username:", m.nameInput, m.focusedInput == 0, false))
	b.WriteString("\n\n")
	b.WriteString(renderField("Email:", m.emailInput, m.focusedInput == 1, false))
	b.WriteString("\n\n")
	b.WriteString(renderField("Password:", m.passwordInput, m.focusedInput == 2, true))
	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("8-20 letters and digits")))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("🔄 Creating account...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("tab switch  •  enter sign up  •  ctrl+l clear  •  ctrl+s sign in  •  ctrl+c quit")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
