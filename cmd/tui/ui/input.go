package ui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editText applies a key press to value. It returns the new value and
// whether the key was consumed.
func editText(value string, msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyBackspace:
		if value == "" {
			return value, true
		}
		_, size := utf8.DecodeLastRuneInString(value)
		return value[:len(value)-size], true
	case tea.KeySpace:
		return value + " ", true
	case tea.KeyRunes:
		return value + string(msg.Runes), true
	}
	return value, false
}

func renderField(label, value string, focused, masked bool) string {
	style := InputStyle
	if focused {
		style = FocusedInputStyle
	}
	if masked {
		value = strings.Repeat("•", utf8.RuneCountInString(value))
	}

	field := lipgloss.JoinHorizontal(lipgloss.Left,
		LabelStyle.Width(15).Render(label),
		style.Width(50).Render(value),
	)
	return centered(field)
}

func centered(s string) string {
	return lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(s)
}
