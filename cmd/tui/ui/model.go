package ui

import (
	"github.com/Varun5711/todolist/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type View int

const (
	LoginView View = iota
	SignupView
	MenuView
	ListView
	DetailView
	FormView
)

type Model struct {
	currentView View
	login       *LoginModel
	signup      *SignupModel
	menu        *MenuModel
	list        *ListModel
	detail      *DetailModel
	form        *FormModel
	client      *client.Client
	width       int
	height      int
}

func NewModel(c *client.Client) Model {
	return Model{
		currentView: LoginView,
		login:       NewLoginModel(c),
		signup:      NewSignupModel(c),
		menu:        NewMenuModel(),
		list:        NewListModel(c),
		detail:      NewDetailModel(c),
		form:        NewFormModel(c),
		client:      c,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) authenticated() bool {
	return m.client.Session().Token != ""
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authSuccessMsg:
		m.client.SetSession(msg.session)
		m.login.Reset()
		m.signup = NewSignupModel(m.client)
		m.currentView = MenuView
		return m, nil

	case backToMenuMsg:
		m.currentView = MenuView
		return m, nil

	case backToListMsg:
		m.currentView = ListView
		return m, m.list.Reload()

	case openDetailMsg:
		m.detail.SetTodo(msg.todo)
		m.currentView = DetailView
		return m, nil

	case openFormMsg:
		m.form.Reset(msg.todo)
		m.currentView = FormView
		return m, nil

	case todoSavedMsg:
		m.list.notice = "Saved todo #" + formatID(msg.todo.ID)
		m.detail.SetTodo(msg.todo)
		m.currentView = DetailView
		return m, nil

	case todoDeletedMsg:
		m.list.notice = "Deleted todo #" + formatID(msg.id)
		m.currentView = ListView
		return m, m.list.Reload()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+s":
			switch m.currentView {
			case LoginView:
				m.currentView = SignupView
				return m, nil
			case SignupView:
				m.currentView = LoginView
				return m, nil
			}
		}
	}

	switch m.currentView {
	case LoginView:
		updated, cmd := m.login.Update(msg)
		m.login = updated.(*LoginModel)
		return m, cmd

	case SignupView:
		updated, cmd := m.signup.Update(msg)
		m.signup = updated.(*SignupModel)
		return m, cmd

	case MenuView:
		updated, cmd := m.menu.Update(msg)
		m.menu = updated.(*MenuModel)
		if m.menu.selected == -1 {
			return m, cmd
		}
		selected := m.menu.selected
		m.menu.selected = -1

		switch selected {
		case menuMyTodos:
			m.list.notice = ""
			m.currentView = ListView
			return m, m.list.Reload()
		case menuNewTodo:
			m.form.Reset(nil)
			m.currentView = FormView
		case menuSignOut:
			m.client.SetSession(client.Session{})
			m.list = NewListModel(m.client)
			m.menu = NewMenuModel()
			m.currentView = LoginView
		}
		return m, cmd

	case ListView:
		updated, cmd := m.list.Update(msg)
		m.list = updated.(*ListModel)
		return m, cmd

	case DetailView:
		updated, cmd := m.detail.Update(msg)
		m.detail = updated.(*DetailModel)
		return m, cmd

	case FormView:
		updated, cmd := m.form.Update(msg)
		m.form = updated.(*FormModel)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var statusBar string
	if m.authenticated() && m.currentView != LoginView && m.currentView != SignupView {
		statusBar = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Left).
			Background(BgDark).
			Padding(0, 2).
			Render(lipgloss.NewStyle().Foreground(Success).Render("👤 " + m.client.Session().Email))
	}

	var mainContent string
	switch m.currentView {
	case LoginView:
		mainContent = m.login.View()
	case SignupView:
		mainContent = m.signup.View()
	case MenuView:
		mainContent = m.menu.View()
	case ListView:
		mainContent = m.list.View()
	case DetailView:
		mainContent = m.detail.View()
	case FormView:
		mainContent = m.form.View()
	}

	if statusBar != "" {
		return lipgloss.JoinVertical(lipgloss.Left, statusBar, "\n", mainContent)
	}
	return mainContent
}
