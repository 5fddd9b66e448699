package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

// Step IDs
const (
	StepClone        = "clone"
	StepStripHistory = "strip-history"
	StepManifest     = "manifest"
	StepEnv          = "env"
	StepInstall      = "install"
	StepGitInit      = "git-init"
	StepCommit       = "commit"
)

// vcsDir is the version-control metadata directory removed after cloning.
const vcsDir = ".git"

// Default returns the full seven-step setup sequence.
func Default(d Deps) *Sequence {
	return NewSequence(
		Clone(d),
		StripHistory(d),
		UpdateManifest(d),
		SetupEnvironment(d),
		InstallDependencies(d),
		InitRepository(d),
		InitialCommit(d),
	)
}

// Clone clones the template repository into the target path.
func Clone(d Deps) Step {
	return Step{
		ID:      StepClone,
		Title:   "Cloning template...",
		Success: "Template cloned successfully",
		Failure: "Failed to clone template",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			_, err := system.Run(ctx, d.Executor, "", d.Config.Git, "clone", d.Config.TemplateRepo, t.Path)
			return Result{}, err
		},
	}
}

// StripHistory removes the template's version-control metadata.
func StripHistory(d Deps) Step {
	return Step{
		ID:      StepStripHistory,
		Title:   "Cleaning up git history...",
		Success: "Git history cleaned",
		Failure: "Failed to clean git history",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			if err := d.FS.RemoveAll(filepath.Join(t.Path, vcsDir)); err != nil {
				return Result{}, fmt.Errorf("failed to remove %s: %w", vcsDir, err)
			}
			return Result{}, nil
		},
	}
}

// UpdateManifest sets the manifest's name field to the project name.
func UpdateManifest(d Deps) Step {
	return Step{
		ID:      StepManifest,
		Title:   "Updating project configuration...",
		Success: "Project configuration updated",
		Failure: "Failed to update project configuration",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			path := filepath.Join(t.Path, d.Config.ManifestFile)
			return Result{}, RewriteManifest(d.FS, path, t.Name)
		},
	}
}

// SetupEnvironment copies the example environment file to the local one.
// A template without an example file is not an error.
func SetupEnvironment(d Deps) Step {
	return Step{
		ID:      StepEnv,
		Title:   "Setting up environment configuration...",
		Success: "Environment configuration created",
		Failure: "Failed to set up environment configuration",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			src := filepath.Join(t.Path, d.Config.EnvExample)
			dst := filepath.Join(t.Path, d.Config.EnvLocal)

			if !d.FS.Exists(src) {
				logging.Debug("no example environment file", "path", src)
				return Result{Note: fmt.Sprintf("Environment setup skipped (no %s found)", d.Config.EnvExample)}, nil
			}

			if err := d.FS.CopyFile(src, dst); err != nil {
				return Result{}, fmt.Errorf("failed to copy %s to %s: %w", d.Config.EnvExample, d.Config.EnvLocal, err)
			}
			return Result{}, nil
		},
	}
}

// InstallDependencies runs the package manager inside the target path.
func InstallDependencies(d Deps) Step {
	return Step{
		ID:      StepInstall,
		Title:   "Installing dependencies...",
		Success: "Dependencies installed",
		Failure: "Failed to install dependencies",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			args, err := d.Config.InstallArgs()
			if err != nil {
				return Result{}, err
			}
			_, err = system.Run(ctx, d.Executor, t.Path, args[0], args[1:]...)
			return Result{}, err
		},
	}
}

// InitRepository initializes a fresh repository inside the target path.
func InitRepository(d Deps) Step {
	return Step{
		ID:      StepGitInit,
		Title:   "Initializing git repository...",
		Success: "Git repository initialized",
		Failure: "Failed to initialize git repository",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			_, err := system.Run(ctx, d.Executor, t.Path, d.Config.Git, "init")
			return Result{}, err
		},
	}
}

// InitialCommit stages every file and records the single initial commit.
func InitialCommit(d Deps) Step {
	return Step{
		ID:      StepCommit,
		Title:   "Creating initial commit...",
		Success: "Initial commit created",
		Failure: "Failed to create initial commit",
		Run: func(ctx context.Context, t *Target) (Result, error) {
			if _, err := system.Run(ctx, d.Executor, t.Path, d.Config.Git, "add", "."); err != nil {
				return Result{}, err
			}
			_, err := system.Run(ctx, d.Executor, t.Path, d.Config.Git, "commit", "-m", d.Config.CommitMessage)
			return Result{}, err
		},
	}
}
