// Package app provides the application context for create-blaze-app.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/project"
	"github.com/dimi-r1/create-fb-react/internal/scaffold"
	"github.com/dimi-r1/create-fb-react/internal/system"
	"github.com/dimi-r1/create-fb-react/internal/tui"
)

// App holds the application dependencies
type App struct {
	// Config is the loaded tool configuration
	Config *config.Config

	// FS and Executor are the OS boundaries the steps go through
	FS       system.FileSystem
	Executor system.CommandExecutor

	// In, Out and Err are the user's streams
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Interactive enables the name prompt and spinners
	Interactive bool

	// WorkDir is where projects are created. Empty means the process working directory.
	WorkDir string
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithFileSystem sets a custom file system
func WithFileSystem(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithStreams sets the input and output streams.
// Interactivity is re-detected from out.
func WithStreams(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.In = in
		a.Out = out
		a.Err = errOut
		a.Interactive = IsTerminal(out)
	}
}

// WithInteractive forces interactive mode on or off
func WithInteractive(interactive bool) Option {
	return func(a *App) {
		a.Interactive = interactive
	}
}

// WithWorkDir sets the directory projects are created in
func WithWorkDir(dir string) Option {
	return func(a *App) {
		a.WorkDir = dir
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Config:      config.Default(),
		FS:          system.DefaultFS(),
		Executor:    system.DefaultExecutor(),
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: IsTerminal(os.Stdout),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Dir returns the directory projects are created in.
func (a *App) Dir() (string, error) {
	if a.WorkDir != "" {
		return a.WorkDir, nil
	}
	return os.Getwd()
}

// Creator returns a project creator wired to the app's dependencies.
func (a *App) Creator() *project.Creator {
	return project.NewCreator(a.Config, a.FS, a.Executor)
}

// Reporter returns the step observer for the app's output. Verbose runs
// interleave debug records on stderr, so they get plain lines instead of
// spinners.
func (a *App) Reporter() scaffold.Observer {
	return tui.NewReporter(a.Out, a.Interactive && !logging.Verbose())
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
