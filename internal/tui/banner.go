package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/dimi-r1/create-fb-react/internal/config"
)

// Banner styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	successBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("42"))

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const nextStepsTemplate = `## Next steps

    cd %s
    # Configure your Firebase settings in %s
    npm run dev

📚 **Don't forget to:**

1. Set up your Firebase project
2. Enable Google Authentication in Firebase
3. Add your Firebase config to %s

Happy coding! 🎉
`

// PrintHeader prints the application header.
func PrintHeader(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(config.DisplayName))
	fmt.Fprintln(w)
}

// PrintVersion prints version and repository information.
func PrintVersion(w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(config.DisplayName))
	fmt.Fprintln(w, dimStyle.Render("Version: "+config.Version))
	fmt.Fprintln(w, dimStyle.Render("Repository: "+config.BoilerplateRepository))
	fmt.Fprintln(w, dimStyle.Render("CLI Repository: "+config.CLIRepository))
}

// PrintError prints the banner for a failed project creation.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, errorBannerStyle.Render("❌ Error creating project:"))
	fmt.Fprintln(w, errorBannerStyle.Render(err.Error()))
}

// PrintInvalid prints a rejected input, such as an existing directory.
func PrintInvalid(w io.Writer, err error) {
	fmt.Fprintln(w, errorBannerStyle.Render("❌ "+err.Error()))
}

// NextSteps returns the markdown shown after a successful run.
func NextSteps(name, envLocal string) string {
	return fmt.Sprintf(nextStepsTemplate, name, envLocal, envLocal)
}

// renderNextSteps is swapped out in tests.
var renderNextSteps = renderMarkdown

// PrintSuccess prints the success banner and the next steps for the project.
// Styled output picks a glamour theme for the terminal; otherwise plain text is used.
// The banner is written before rendering, and if rendering fails the raw
// markdown is printed in its place and the error returned.
func PrintSuccess(w io.Writer, name, envLocal string, styled bool) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, successBannerStyle.Render("✅ Project created successfully!"))

	md := NextSteps(name, envLocal)
	body, err := renderNextSteps(md, styled)
	if err != nil {
		fmt.Fprintln(w, strings.TrimRight(md, "\n"))
		fmt.Fprintln(w)
		return fmt.Errorf("failed to render next steps: %w", err)
	}

	fmt.Fprintln(w, strings.TrimRight(body, "\n"))
	fmt.Fprintln(w)
	return nil
}

func renderMarkdown(md string, styled bool) (string, error) {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if styled {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
