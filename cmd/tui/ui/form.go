package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Varun5711/todolist/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxTitleLength = 30

type todoSavedMsg struct {
	todo client.Todo
}

type todoSaveErrorMsg struct {
	err error
}

// FormModel creates a todo, or edits one when editing is non-nil.
type FormModel struct {
	editing      *client.Todo
	titleInput   string
	contentInput string
	focusedInput int
	loading      bool
	err          error
	client       *client.Client
}

func NewFormModel(c *client.Client) *FormModel {
	return &FormModel{client: c}
}

func (m *FormModel) Init() tea.Cmd {
	return nil
}

func (m *FormModel) Reset(todo *client.Todo) {
	*m = FormModel{editing: todo, client: m.client}
	if todo != nil {
		m.titleInput = todo.Title
		m.contentInput = todo.Content
	}
}

func validateTodo(title, content string) error {
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLength)
	}
	if content == "" {
		return fmt.Errorf("content must not be empty")
	}
	return nil
}

func saveTodoCmd(c *client.Client, editing *client.Todo, title, content string) tea.Cmd {
	return func() tea.Msg {
		var (
			todo *client.Todo
			err  error
		)
		if editing != nil {
			todo, err = c.UpdateTodo(editing.ID, title, content)
		} else {
			todo, err = c.CreateTodo(title, content)
		}
		if err != nil {
			return todoSaveErrorMsg{err: err}
		}
		return todoSavedMsg{todo: *todo}
	}
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todoSaveErrorMsg:
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
			if err := validateTodo(m.titleInput, m.contentInput); err != nil {
				m.err = err
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, saveTodoCmd(m.client, m.editing, m.titleInput, m.contentInput)
		case "esc":
			if m.editing != nil {
				todo := *m.editing
				return m, func() tea.Msg { return openDetailMsg{todo: todo} }
			}
			return m, func() tea.Msg { return backToListMsg{} }
		case "ctrl+l":
			m.titleInput = ""
			m.contentInput = ""
			m.err = nil
		default:
			if m.focusedInput == 0 {
				m.titleInput, _ = editText(m.titleInput, msg)
			} else {
				m.contentInput, _ = editText(m.contentInput, msg)
			}
		}
	}
	return m, nil
}

func (m *FormModel) View() string {
	var b strings.Builder

	heading := "NEW TODO"
	if m.editing != nil {
		heading = "EDIT TODO #" + formatID(m.editing.ID)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(1).
		MarginBottom(2).
		Render(TitleStyle.Render("✏️  " + heading)))
	b.WriteString("\n")

	b.WriteString(renderField("Title:", m.titleInput, m.focusedInput == 0, false))
	b.WriteString("\n")
	counter := fmt.Sprintf("%d/%d", utf8.RuneCountInString(m.titleInput), maxTitleLength)
	counterStyle := InfoStyle
	if utf8.RuneCountInString(m.titleInput) > maxTitleLength {
		counterStyle = ErrorStyle
	}
	b.WriteString(centered(counterStyle.Render(counter)))
	b.WriteString("\n\n")
	b.WriteString(renderField("Content:", m.contentInput, m.focusedInput == 1, false))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("Saving...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render("Error: " + m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("tab switch  •  enter save  •  ctrl+l clear  •  esc cancel")))

	return BoxStyle.Width(76).Render(b.String())
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
