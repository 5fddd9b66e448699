package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/scaffold"
)

var (
	stepOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stepFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// successText is the note when a step supplied one, else its fixed message.
func successText(step scaffold.Step, note string) string {
	if note != "" {
		return note
	}
	return step.Success
}

func succeededLine(step scaffold.Step, note string) string {
	return stepOKStyle.Render(logging.SuccessGlyph) + " " + successText(step, note)
}

func failedLine(step scaffold.Step) string {
	return stepFailStyle.Render(logging.ErrorGlyph) + " " + step.Failure
}

// NewReporter returns a spinner reporter for interactive terminals and a
// plain line reporter otherwise.
func NewReporter(w io.Writer, interactive bool) scaffold.Observer {
	if interactive {
		return NewSpinnerReporter(w)
	}
	return PlainReporter{}
}

// PlainReporter prints one line per finished step through the logging
// user streams: successes on stdout, failures on stderr.
type PlainReporter struct{}

func (PlainReporter) StepStarted(step scaffold.Step) {}

func (PlainReporter) StepSucceeded(step scaffold.Step, note string) {
	logging.UserSuccess("%s", successText(step, note))
}

func (PlainReporter) StepFailed(step scaffold.Step, err error) {
	logging.UserError("%s", step.Failure)
}

// stepDoneMsg ends a step's spinner with its final line.
type stepDoneMsg struct {
	line string
}

// stepModel shows a spinner next to the running step's title.
type stepModel struct {
	spinner spinner.Model
	title   string
	final   string
	done    bool
}

func newStepModel(title string) stepModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return stepModel{spinner: s, title: title}
}

func (m stepModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		m.final = msg.line
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m stepModel) View() string {
	if m.done {
		return m.final + "\n"
	}
	return m.spinner.View() + " " + m.title
}

// SpinnerReporter animates a spinner while each step runs.
// Steps run on the caller's goroutine; the spinner program runs beside it.
type SpinnerReporter struct {
	out     io.Writer
	program *tea.Program
	done    chan tea.Model
}

// NewSpinnerReporter creates a SpinnerReporter writing to w.
func NewSpinnerReporter(w io.Writer) *SpinnerReporter {
	return &SpinnerReporter{out: w}
}

func (r *SpinnerReporter) StepStarted(step scaffold.Step) {
	p := tea.NewProgram(newStepModel(step.Title),
		tea.WithInput(nil),
		tea.WithOutput(r.out),
		tea.WithoutSignalHandler(),
	)
	done := make(chan tea.Model, 1)

	go func() {
		final, err := p.Run()
		if err != nil {
			logging.Debug("spinner stopped", "step", step.ID, "error", err)
		}
		done <- final
	}()

	r.program = p
	r.done = done
}

func (r *SpinnerReporter) StepSucceeded(step scaffold.Step, note string) {
	r.finish(succeededLine(step, note))
}

func (r *SpinnerReporter) StepFailed(step scaffold.Step, err error) {
	r.finish(failedLine(step))
}

func (r *SpinnerReporter) finish(line string) {
	if r.program == nil {
		fmt.Fprintln(r.out, line)
		return
	}

	r.program.Send(stepDoneMsg{line: line})
	final := <-r.done
	r.program, r.done = nil, nil

	// A program that exited early never rendered the line.
	if m, ok := final.(stepModel); !ok || !m.done {
		fmt.Fprintln(r.out, line)
	}
}
