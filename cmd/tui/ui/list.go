package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Varun5711/todolist/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type todosLoadedMsg struct {
	todos []client.Todo
}

type todosErrorMsg struct {
	err error
}

type openDetailMsg struct {
	todo client.Todo
}

// openFormMsg opens the editor; a nil todo means a new one.
type openFormMsg struct {
	todo *client.Todo
}

type backToMenuMsg struct{}

type ListModel struct {
	todos     []client.Todo
	cursor    int
	keyword   string
	searching bool
	loading   bool
	notice    string
	err       error
	client    *client.Client
}

func NewListModel(c *client.Client) *ListModel {
	return &ListModel{client: c}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

// Reload fetches the list again with the current keyword.
func (m *ListModel) Reload() tea.Cmd {
	m.loading = true
	m.err = nil
	return listTodosCmd(m.client, m.keyword)
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

func ago(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

func listTodosCmd(c *client.Client, keyword string) tea.Cmd {
	return func() tea.Msg {
		todos, err := c.ListTodos(keyword)
		if err != nil {
			return todosErrorMsg{err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		m.todos = msg.todos
		m.err = nil
		if m.cursor >= len(m.todos) {
			m.cursor = 0
		}
		return m, nil

	case todosErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.todos)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.todos) {
				todo := m.todos[m.cursor]
				return m, func() tea.Msg { return openDetailMsg{todo: todo} }
			}
		case "n":
			return m, func() tea.Msg { return openFormMsg{} }
		case "/":
			m.searching = true
		case "r":
			if !m.loading {
				return m, m.Reload()
			}
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		}
	}

	return m, nil
}

func (m *ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.cursor = 0
		return m, m.Reload()
	case "esc":
		m.searching = false
		return m, nil
	default:
		m.keyword, _ = editText(m.keyword, msg)
	}
	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(1).
		MarginBottom(1).
		Render(TitleStyle.Render("YOUR TODOS")))
	b.WriteString("\n")

	if m.searching || m.keyword != "" {
		b.WriteString(renderField("Search:", m.keyword, m.searching, false))
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		b.WriteString(centered(SuccessStyle.Render("✓ " + m.notice)))
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString(centered(lipgloss.NewStyle().Foreground(Accent).Render("⏳ Loading todos...")))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	case len(m.todos) == 0:
		b.WriteString(centered(lipgloss.NewStyle().Foreground(Muted).Render("📝 No todos found. Press n to add one!")))
		b.WriteString("\n")
	default:
		for i, todo := range m.todos {
			border := Muted
			if i == m.cursor {
				border = Accent
			}
			cardStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Padding(0, 2).
				Width(70)

			titleLine := lipgloss.NewStyle().Foreground(Success).Bold(true).Render(fmt.Sprintf("#%d ", todo.ID)) +
				lipgloss.NewStyle().Foreground(Text).Bold(true).Render(todo.Title)
			contentLine := lipgloss.NewStyle().Foreground(Secondary).Render(truncate(todo.Content, 60))
			timeLine := lipgloss.NewStyle().Foreground(Muted).Render("Updated " + ago(todo.UpdatedAt))

			card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleLine, contentLine, timeLine))
			b.WriteString(centered(card))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	help := "↑/↓ navigate  •  enter open  •  n new  •  / search  •  r refresh  •  q back"
	if m.searching {
		help = "type keyword  •  enter search  •  esc cancel"
	}
	b.WriteString(centered(InfoStyle.Render(help)))

	return BoxStyle.Width(76).Render(b.String())
}
