// Package system is the seam between the scaffolder and the host machine.
// File access and subprocesses go through the interfaces here so tests can
// substitute MockFS and MockExecutor.
package system

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
)

// FileSystem is the set of file operations the scaffold steps perform on
// a freshly cloned project.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error

	Stat(path string) (fs.FileInfo, error)

	// Exists reports whether anything occupies path. A dangling symlink
	// counts.
	Exists(path string) bool

	// CopyFile copies src to dst with the permission bits of src.
	CopyFile(src, dst string) error
}

// CommandExecutor runs external programs and returns their combined output.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)

	// ExecuteIn is Execute with dir as the working directory.
	ExecuteIn(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

	LookPath(name string) (string, error)
}

// DefaultFS returns the FileSystem backed by the host.
func DefaultFS() FileSystem { return hostFS{} }

// DefaultExecutor returns the CommandExecutor that spawns host processes.
func DefaultExecutor() CommandExecutor { return hostExecutor{} }

type hostFS struct{}

func (hostFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (hostFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (hostFS) RemoveAll(path string) error { return os.RemoveAll(path) }

func (hostFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (hostFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (hostFS) CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}

type hostExecutor struct{}

func (e hostExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	return e.ExecuteIn(ctx, "", name, args...)
}

func (hostExecutor) ExecuteIn(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

func (hostExecutor) LookPath(name string) (string, error) { return exec.LookPath(name) }
