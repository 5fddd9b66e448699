package project

import (
	"context"
	"fmt"

	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/scaffold"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

// CreateOptions holds all options for creating a project.
type CreateOptions struct {
	// Name is the project name (required)
	Name string

	// Dir is the directory the project is created in (required)
	Dir string

	// Template is accepted for compatibility and not used by any step
	Template string

	// Observer receives step progress (optional)
	Observer scaffold.Observer

	// OnStepError is called with a step failure before cleanup runs (optional)
	OnStepError func(err error)
}

// CreateResult holds the result of a successful project creation.
type CreateResult struct {
	Name string
	Path string
}

// Creator handles project creation with all necessary dependencies.
type Creator struct {
	cfg      *config.Config
	fs       system.FileSystem
	executor system.CommandExecutor
	sequence *scaffold.Sequence
}

// NewCreator creates a Creator running the default step sequence.
func NewCreator(cfg *config.Config, fs system.FileSystem, executor system.CommandExecutor) *Creator {
	return &Creator{
		cfg:      cfg,
		fs:       fs,
		executor: executor,
		sequence: scaffold.Default(scaffold.Deps{Config: cfg, FS: fs, Executor: executor}),
	}
}

// WithSequence replaces the step sequence.
func (c *Creator) WithSequence(seq *scaffold.Sequence) *Creator {
	c.sequence = seq
	return c
}

// Create validates the request and runs the step sequence.
// On a step failure the project directory is removed before the error is returned.
func (c *Creator) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	logging.Debug("starting project creation", "name", opts.Name, "dir", opts.Dir)

	req, err := NewRequest(opts.Dir, opts.Name, opts.Template)
	if err != nil {
		return nil, err
	}

	// Lstat the literal path first so a symlink at the target is reported
	// as existing rather than followed.
	if err := CheckTargetAbsent(c.fs, req.Path, req.Name); err != nil {
		return nil, err
	}
	if _, err := ResolvePath(opts.Dir, req.Name); err != nil {
		return nil, errors.Wrap(errors.KindValidation, "invalid project name", err)
	}

	if err := c.preflight(); err != nil {
		return nil, err
	}

	if err := c.sequence.Run(ctx, req.Target(), opts.Observer); err != nil {
		if opts.OnStepError != nil {
			opts.OnStepError(err)
		}
		Cleanup(c.fs, req.Path)
		return nil, err
	}

	logging.Debug("project created", "name", req.Name, "path", req.Path)
	return &CreateResult{Name: req.Name, Path: req.Path}, nil
}

// preflight checks that the external tools the steps call are installed.
func (c *Creator) preflight() error {
	installArgs, err := c.cfg.InstallArgs()
	if err != nil {
		return errors.ConfigError("invalid install command", err)
	}

	for _, tool := range []string{c.cfg.Git, installArgs[0]} {
		path, err := c.executor.LookPath(tool)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("%s is required but was not found on PATH", tool))
		}
		logging.Debug("found tool", "tool", tool, "path", path)
	}
	return nil
}
