// internal/ui/interactive.go
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

// ErrCanceled is returned when the user quits a prompt without answering.
var ErrCanceled = errors.New("prompt canceled")

// --- Choice picker ---

type pickerModel struct {
	question string
	cursor   int
	choices  []string
	choice   string
}

func newPicker(question string, choices []string, current string) pickerModel {
	m := pickerModel{question: question, choices: choices}
	for i, c := range choices {
		if c == current {
			m.cursor = i
		}
	}
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "enter":
		m.choice = m.choices[m.cursor]
		return m, tea.Quit
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor - 1 + len(m.choices)) % len(m.choices)
	}
	return m, nil
}

func (m pickerModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.question + "\n\n")
	for i, choice := range m.choices {
		cursor := "  "
		if m.cursor == i {
			cursor = color.CyanString("> ")
		}
		fmt.Fprintf(&sb, "%s%s\n", cursor, choice)
	}
	sb.WriteString(color.HiBlackString("\n↑/↓ to move, enter to select, q to quit\n"))
	return sb.String()
}

// --- Text prompt ---

type promptModel struct {
	question  string
	input     textinput.Model
	submitted bool
}

func newPrompt(question, defaultValue string) promptModel {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60
	return promptModel{question: question, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.question, m.input.View(), color.HiBlackString("(esc to cancel)"))
}

// --- Public prompt functions ---

// Choose asks the user to pick one of choices, starting at current.
func Choose(question string, choices []string, current string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for %q", question)
	}
	m, err := tea.NewProgram(newPicker(question, choices, current)).Run()
	if err != nil {
		return "", err
	}
	choice := m.(pickerModel).choice
	if choice == "" {
		return "", ErrCanceled
	}
	return choice, nil
}

// Ask prompts for a line of text. An empty answer returns defaultValue.
func Ask(question, defaultValue string) (string, error) {
	m, err := tea.NewProgram(newPrompt(question, defaultValue)).Run()
	if err != nil {
		return "", err
	}
	pm := m.(promptModel)
	if !pm.submitted {
		return "", ErrCanceled
	}
	if v := strings.TrimSpace(pm.input.Value()); v != "" {
		return v, nil
	}
	return defaultValue, nil
}
