package system

import (
	"context"
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/dimi-r1/create-fb-react/internal/logging"
)

// CommandError reports an external process that could not be run or exited non-zero.
// It carries the original command text and the captured output.
type CommandError struct {
	Command string
	Dir     string
	Output  []byte
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s: %v", e.Command, e.Err)
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandLine renders a command and its arguments as shell-quoted text.
func CommandLine(name string, args ...string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}

// Run executes a command through the executor, in dir when it is non-empty.
// Failures are returned as *CommandError.
func Run(ctx context.Context, executor CommandExecutor, dir string, name string, args ...string) ([]byte, error) {
	line := CommandLine(name, args...)
	logging.Debug("running command", "command", line, "dir", dir)

	var (
		output []byte
		err    error
	)
	if dir == "" {
		output, err = executor.Execute(ctx, name, args...)
	} else {
		output, err = executor.ExecuteIn(ctx, dir, name, args...)
	}
	if err != nil {
		return output, &CommandError{
			Command: line,
			Dir:     dir,
			Output:  output,
			Err:     err,
		}
	}

	logging.Debug("command finished", "command", line, "bytes", len(output))
	return output, nil
}
