package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SetOutput redirects user-facing output. Nil writers restore the process streams.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// UserSuccess prints a green check line to stdout.
func UserSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, successStyle.Render(SuccessGlyph)+" "+fmt.Sprintf(format, args...))
}

func UserNote(format string, args ...any) {
	fmt.Fprintln(stdout, noteStyle.Render(fmt.Sprintf(format, args...)))
}

func UserWarning(format string, args ...any) {
	fmt.Fprintln(stderr, warningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// UserError prints a red cross line to stderr.
func UserError(format string, args ...any) {
	fmt.Fprintln(stderr, errorStyle.Render(ErrorGlyph)+" "+fmt.Sprintf(format, args...))
}

// Status glyphs shared with the spinner reporter so both modes print the
// same marks.
const (
	SuccessGlyph = "✓"
	ErrorGlyph   = "✗"
)
