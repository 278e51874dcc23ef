package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4")).
	Bold(true)

// promptCount asks the operator how many sheets to generate. When stdin is
// not a terminal the default is used without prompting, so piped invocations
// keep working.
func promptCount(def int) (int, error) {
	fi, err := os.Stdin.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return def, nil
	}

	final, err := tea.NewProgram(newCountModel(def)).Run()
	if err != nil {
		return 0, fmt.Errorf("count prompt: %w", err)
	}
	m := final.(countModel)
	if m.aborted {
		return 0, errors.New("count prompt: cancelled")
	}
	return m.count, nil
}

// countModel is a one-line textinput prompt for the sheet count. Empty input
// accepts the default; non-digit input is rejected while typing.
type countModel struct {
	input   textinput.Model
	def     int
	count   int
	done    bool
	aborted bool
}

func newCountModel(def int) countModel {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(def)
	ti.CharLimit = 6
	ti.Width = 8
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return errors.New("digits only")
			}
		}
		return nil
	}
	ti.Focus()

	return countModel{input: ti, def: def}
}

func (m countModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m countModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.count = m.def
			if v := m.input.Value(); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					return m, nil
				}
				m.count = n
			}
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m countModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	label := promptStyle.Render(fmt.Sprintf("How many sheets? (default %d)", m.def))
	return fmt.Sprintf("%s %s\n", label, m.input.View())
}
