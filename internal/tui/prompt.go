package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/logging"
)

// ErrCancelled is returned when the user dismisses the name prompt.
var ErrCancelled = errors.New(errors.KindValidation, "Project creation cancelled")

const namePrompt = "What is your project name?"

var (
	promptMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	promptLabelStyle = lipgloss.NewStyle().Bold(true)
	promptValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	promptErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// nameModel asks for the project name.
type nameModel struct {
	input     textinput.Model
	fallback  string
	validate  func(string) error
	err       error
	value     string
	done      bool
	cancelled bool
}

func newNameModel(fallback string, validate func(string) error) nameModel {
	ti := textinput.New()
	ti.Placeholder = fallback
	ti.Focus()
	ti.CharLimit = 214
	ti.Width = 40

	return nameModel{
		input:    ti,
		fallback: fallback,
		validate: validate,
	}
}

func (m nameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m nameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			// The answer is checked as typed; only a blank answer takes the fallback.
			value := m.input.Value()
			if value == "" {
				value = m.fallback
			}
			if err := m.validate(value); err != nil {
				m.err = err
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit

		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	prev := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.err = nil
	}
	return m, cmd
}

func (m nameModel) View() string {
	if m.done {
		return promptMarkStyle.Render(logging.SuccessGlyph) + " " + promptLabelStyle.Render(namePrompt) + " " + promptValueStyle.Render(m.value) + "\n"
	}
	if m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptMarkStyle.Render("?") + " " + promptLabelStyle.Render(namePrompt) + " " + m.input.View())
	if m.err != nil {
		b.WriteString("\n" + promptErrStyle.Render(">> "+m.err.Error()))
	}
	return b.String()
}

// PromptName asks for a project name, offering fallback when the answer is left blank.
// Every answer is checked with validate; a rejected one is shown inline and the prompt stays open.
func PromptName(in io.Reader, out io.Writer, fallback string, validate func(string) error) (string, error) {
	p := tea.NewProgram(newNameModel(fallback, validate), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.KindGeneral, "failed to read project name", err)
	}

	m := final.(nameModel)
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.value, nil
}
