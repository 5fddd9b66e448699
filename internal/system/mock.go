package system

import (
	"context"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	shellquote "github.com/kballard/go-shellquote"
)

// MockFS is an in-memory FileSystem keyed by cleaned path.
type MockFS struct {
	mu      sync.RWMutex
	entries map[string]*mockEntry

	// Errors returned before the matching operation touches any state.
	ReadFileErr  error
	WriteFileErr error
	RemoveAllErr error
	CopyFileErr  error
}

type mockEntry struct {
	data []byte
	mode fs.FileMode
}

func (e *mockEntry) info(path string) fs.FileInfo {
	return mockInfo{name: filepath.Base(path), size: int64(len(e.data)), mode: e.mode}
}

// NewMockFS returns an empty MockFS.
func NewMockFS() *MockFS {
	return &MockFS{entries: make(map[string]*mockEntry)}
}

// AddFile stores a file and creates its parent directories.
func (m *MockFS) AddFile(path string, data []byte, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(path, &mockEntry{data: data, mode: mode.Perm()})
}

// AddDir creates a directory and its parents.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(path, &mockEntry{mode: fs.ModeDir | 0755})
}

// GetFile returns the contents of a regular file.
func (m *MockFS) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[filepath.Clean(path)]
	if !ok || e.mode.IsDir() {
		return nil, false
	}
	return e.data, true
}

// put must be called with mu held.
func (m *MockFS) put(path string, e *mockEntry) {
	path = filepath.Clean(path)
	m.entries[path] = e
	for dir := filepath.Dir(path); dir != "." && dir != "/"; dir = filepath.Dir(dir) {
		if _, ok := m.entries[dir]; !ok {
			m.entries[dir] = &mockEntry{mode: fs.ModeDir | 0755}
		}
	}
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.GetFile(path)
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	m.AddFile(path, data, perm)
	return nil
}

func (m *MockFS) RemoveAll(path string) error {
	if m.RemoveAllErr != nil {
		return m.RemoveAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	root := filepath.Clean(path)
	for p := range m.entries {
		if p == root || strings.HasPrefix(p, root+"/") {
			delete(m.entries, p)
		}
	}
	return nil
}

func (m *MockFS) Stat(path string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[filepath.Clean(path)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return e.info(path), nil
}

func (m *MockFS) Exists(path string) bool {
	_, err := m.Stat(path)
	return err == nil
}

func (m *MockFS) CopyFile(src, dst string) error {
	if m.CopyFileErr != nil {
		return m.CopyFileErr
	}
	info, err := m.Stat(src)
	if err != nil {
		return err
	}
	data, err := m.ReadFile(src)
	if err != nil {
		return err
	}
	return m.WriteFile(dst, data, info.Mode())
}

type mockInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i mockInfo) Name() string       { return i.name }
func (i mockInfo) Size() int64        { return i.size }
func (i mockInfo) Mode() fs.FileMode  { return i.mode }
func (i mockInfo) ModTime() time.Time { return time.Time{} }
func (i mockInfo) IsDir() bool        { return i.mode.IsDir() }
func (i mockInfo) Sys() any           { return nil }

// MockCommand is one recorded invocation.
type MockCommand struct {
	Name string
	Args []string
	Dir  string
}

// Line renders the command as shell-quoted text.
func (c MockCommand) Line() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// key is the Responses lookup key: the program plus its first argument.
func (c MockCommand) key() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + c.Args[0]
}

// MockResponse is a canned result.
type MockResponse struct {
	Output []byte
	Err    error
}

// MockExecutor records every command and answers from Handler, then
// Responses, then DefaultResponse.
type MockExecutor struct {
	mu sync.Mutex

	Commands []MockCommand

	// Responses is keyed by "program subcommand" or by "program" alone.
	Responses       map[string]MockResponse
	DefaultResponse MockResponse

	// Handler runs without the lock held, so it may do real work such as
	// populating a clone directory. Returning handled=false falls through
	// to Responses.
	Handler func(cmd MockCommand) (output []byte, err error, handled bool)

	// Missing names programs LookPath reports as not installed.
	Missing map[string]bool
}

// NewMockExecutor returns a MockExecutor with no canned responses.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Responses: make(map[string]MockResponse),
		Missing:   make(map[string]bool),
	}
}

// AddResponse registers the result for a "program" or "program subcommand" key.
func (m *MockExecutor) AddResponse(pattern string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Output: output, Err: err}
}

func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	return m.record(ctx, MockCommand{Name: name, Args: args})
}

func (m *MockExecutor) ExecuteIn(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	return m.record(ctx, MockCommand{Name: name, Args: args, Dir: dir})
}

func (m *MockExecutor) record(ctx context.Context, cmd MockCommand) ([]byte, error) {
	m.mu.Lock()
	m.Commands = append(m.Commands, cmd)
	handler := m.Handler
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if handler != nil {
		if out, err, handled := handler(cmd); handled {
			return out, err
		}
	}
	resp := m.lookup(cmd)
	return resp.Output, resp.Err
}

func (m *MockExecutor) lookup(cmd MockCommand) MockResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range []string{cmd.key(), cmd.Name} {
		if resp, ok := m.Responses[k]; ok {
			return resp
		}
	}
	return m.DefaultResponse
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Missing[name] {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

// Lines returns every recorded command as shell-quoted text.
func (m *MockExecutor) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, len(m.Commands))
	for i, c := range m.Commands {
		lines[i] = c.Line()
	}
	return lines
}

// LastCommand returns the most recent invocation, if any.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}
