// Package testutil provides test utilities for integration tests
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dimi-r1/create-fb-react/internal/app"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

// TestEnv holds the test environment: a real working directory and an
// executor that plays git and npm against it.
type TestEnv struct {
	T        *testing.T
	WorkDir  string
	Executor *system.MockExecutor
	Out      *bytes.Buffer
	Err      *bytes.Buffer
	App      *app.App

	// WithEnvExample controls whether cloned templates ship .env.example
	WithEnvExample bool

	mu      sync.Mutex
	failing map[string]bool
	cleanup func()
}

// NewTestEnv creates a new test environment and installs it as app.Default.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	env := &TestEnv{
		T:              t,
		WorkDir:        t.TempDir(),
		Executor:       system.NewMockExecutor(),
		Out:            &bytes.Buffer{},
		Err:            &bytes.Buffer{},
		WithEnvExample: true,
		failing:        make(map[string]bool),
	}
	env.Executor.Handler = env.handle

	env.App = app.New(
		app.WithFileSystem(system.DefaultFS()),
		app.WithExecutor(env.Executor),
		app.WithStreams(strings.NewReader(""), env.Out, env.Err),
		app.WithWorkDir(env.WorkDir),
	)

	originalDefault := app.Default
	app.SetDefault(env.App)
	logging.SetOutput(env.Out, env.Err)

	env.cleanup = func() {
		app.SetDefault(originalDefault)
		logging.SetOutput(nil, nil)
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default and output streams
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// ProjectPath returns where a project named name is created.
func (e *TestEnv) ProjectPath(name string) string {
	return filepath.Join(e.WorkDir, name)
}

// FailCommand makes commands matching pattern ("name" or "name arg0") fail with output.
func (e *TestEnv) FailCommand(pattern, output string) {
	e.mu.Lock()
	e.failing[pattern] = true
	e.mu.Unlock()
	e.Executor.AddResponse(pattern, []byte(output), fmt.Errorf("exit status 1"))
}

// CommitCount returns how many commits the simulated git recorded for a project.
func (e *TestEnv) CommitCount(name string) int {
	data, err := os.ReadFile(filepath.Join(e.ProjectPath(name), ".git", "commits"))
	if err != nil {
		return 0
	}
	return len(strings.Split(strings.TrimSpace(string(data)), "\n"))
}

func (e *TestEnv) isFailing(cmd system.MockCommand) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.failing[cmd.Name] {
		return true
	}
	return len(cmd.Args) > 0 && e.failing[cmd.Name+" "+cmd.Args[0]]
}

// handle simulates the git subcommands that touch the filesystem.
func (e *TestEnv) handle(cmd system.MockCommand) ([]byte, error, bool) {
	if cmd.Name != "git" || len(cmd.Args) == 0 || e.isFailing(cmd) {
		return nil, nil, false
	}

	switch cmd.Args[0] {
	case "clone":
		dest := cmd.Args[len(cmd.Args)-1]
		return nil, e.writeTemplate(dest), true

	case "init":
		if err := os.MkdirAll(filepath.Join(cmd.Dir, ".git"), 0755); err != nil {
			return nil, err, true
		}
		return []byte("Initialized empty Git repository\n"), nil, true

	case "commit":
		f, err := os.OpenFile(filepath.Join(cmd.Dir, ".git", "commits"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err, true
		}
		defer f.Close()
		_, err = fmt.Fprintln(f, strings.Join(cmd.Args[1:], " "))
		return nil, err, true
	}

	return nil, nil, false
}

// writeTemplate lays out a template checkout at dest, history included.
func (e *TestEnv) writeTemplate(dest string) error {
	files := map[string][]byte{
		"package.json":           TemplateManifest(),
		"README.md":              []byte("# React Firebase Boilerplate\n"),
		"src/main.jsx":           []byte("import React from 'react'\n"),
		".git/HEAD":              []byte("ref: refs/heads/main\n"),
		".git/objects/pack/keep": nil,
	}
	if e.WithEnvExample {
		files[".env.example"] = TemplateEnvExample()
	}

	for rel, data := range files {
		path := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
