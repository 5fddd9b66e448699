// Package project creates a new project from the template.
//
// It owns validation of the user's input and the failure policy around the
// step sequence from package scaffold:
//
//	creator := project.NewCreator(cfg, system.DefaultFS(), system.DefaultExecutor())
//	result, err := creator.Create(ctx, project.CreateOptions{Name: "demo-app", Dir: cwd})
//
// Validation failures (bad name, existing directory, missing tools) are
// returned before anything is written. A step failure triggers Cleanup of the
// project directory; cleanup problems are only warned about.
package project
