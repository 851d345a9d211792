package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// confirmModel is a one-keystroke yes/no question. Enter takes the default.
type confirmModel struct {
	question string
	def      bool
	answer   *bool
	theme    Theme
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	var a bool
	switch key.String() {
	case "y", "Y":
		a = true
	case "n", "N", "esc", "ctrl+c":
		a = false
	case "enter":
		a = m.def
	default:
		return m, nil
	}
	m.answer = &a
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.answer != nil {
		return ""
	}
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Render(m.question) +
		" " + m.hint() + " "
}

// hint renders "[Y/n]" or "[y/N]" with the default answer highlighted.
func (m confirmModel) hint() string {
	yes, no := "y", "N"
	if m.def {
		yes, no = "Y", "n"
	}
	pick := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
	other := m.theme.MutedStyle()
	if m.def {
		return other.Render("[") + pick.Render(yes) + other.Render("/"+no+"]")
	}
	return other.Render("["+yes+"/") + m.theme.DangerStyle().Render(no) + other.Render("]")
}

// Confirm asks question and returns the answer; Enter picks def. Without a
// terminal on stdin nobody can answer, so def is returned unasked.
func Confirm(question string, def bool, theme Theme) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return def, nil
	}
	result, err := tea.NewProgram(confirmModel{question: question, def: def, theme: theme}).Run()
	if err != nil {
		return false, err
	}
	if a := result.(confirmModel).answer; a != nil {
		return *a, nil
	}
	return false, nil
}
