package ui

import (
	"strings"

	"github.com/Varun5711/todolist/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type todoDeletedMsg struct {
	id int64
}

type todoDeleteErrorMsg struct {
	err error
}

type backToListMsg struct{}

type DetailModel struct {
	todo       client.Todo
	confirming bool
	deleting   bool
	err        error
	client     *client.Client
}

func NewDetailModel(c *client.Client) *DetailModel {
	return &DetailModel{client: c}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) SetTodo(todo client.Todo) {
	*m = DetailModel{todo: todo, client: m.client}
}

func deleteTodoCmd(c *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteTodo(id); err != nil {
			return todoDeleteErrorMsg{err: err}
		}
		return todoDeletedMsg{id: id}
	}
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todoDeleteErrorMsg:
		m.deleting = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.deleting {
			return m, nil
		}

		if m.confirming {
			m.confirming = false
			if msg.String() == "y" {
				m.deleting = true
				m.err = nil
				return m, deleteTodoCmd(m.client, m.todo.ID)
			}
			return m, nil
		}

		switch msg.String() {
		case "e":
			todo := m.todo
			return m, func() tea.Msg { return openFormMsg{todo: &todo} }
		case "d":
			m.confirming = true
		case "q", "esc":
			return m, func() tea.Msg { return backToListMsg{} }
		}
	}
	return m, nil
}

func (m *DetailModel) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(1).
		MarginBottom(1).
		Render(TitleStyle.Render(m.todo.Title)))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"ID:", formatID(m.todo.ID)},
		{"Content:", m.todo.Content},
		{"Created:", m.todo.CreatedAt.Local().Format("2006-01-02 15:04")},
		{"Updated:", m.todo.UpdatedAt.Local().Format("2006-01-02 15:04")},
	}
	for _, row := range rows {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Width(12).Render(row.label),
			ValueStyle.Width(52).Render(row.value),
		)
		b.WriteString(centered(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.deleting:
		b.WriteString(centered(InfoStyle.Render("🗑  Deleting...")))
		b.WriteString("\n")
	case m.confirming:
		b.WriteString(centered(lipgloss.NewStyle().Foreground(Warning).Bold(true).Render("Delete this todo? y to confirm, any other key to cancel")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("❌ " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("e edit  •  d delete  •  q back")))

	return BoxStyle.Width(76).Render(b.String())
}
