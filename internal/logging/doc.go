// Package logging splits output into two streams.
//
// Diagnostics go through slog and are hidden unless --verbose is set:
//
//	logging.Debug("running command", "command", line, "dir", dir)
//	logging.Warn("failed to remove project directory", "path", path, "error", err)
//
// User-facing lines are styled with lipgloss. UserSuccess and UserNote
// write to stdout, UserWarning and UserError to stderr, and SetOutput
// redirects both:
//
//	logging.UserSuccess("Dependencies installed")
//	logging.UserError("Failed to install dependencies")
package logging
