// Package tui provides the terminal front end of create-blaze-app.
//
// This package uses the Bubble Tea framework for the interactive parts:
//
//   - PromptName asks for a project name when none was given, validating
//     each answer inline.
//   - SpinnerReporter shows a spinner for the running step and a check or
//     cross once it finishes. PlainReporter prints the same final lines
//     without animation for pipes and CI logs.
//
// The remaining functions print fixed banners (header, version, success with
// next steps, error). The next steps are markdown rendered with glamour.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - text input and spinner
//   - github.com/charmbracelet/lipgloss - Styling
//   - github.com/charmbracelet/glamour - Markdown rendering
package tui
