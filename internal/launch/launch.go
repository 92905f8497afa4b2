// Package launch runs the command picked in the launcher through the
// user's shell.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ExitError reports a launched command that finished with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// Argv appends command to the shell command line.
func Argv(shell []string, command string) []string {
	argv := make([]string, 0, len(shell)+1)
	argv = append(argv, shell...)
	return append(argv, command)
}

// Run spawns argv as a child process and waits for it. A non-zero exit
// status is returned as *ExitError.
func Run(argv []string, env []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = 1
			}
			return &ExitError{Code: code}
		}
		return fmt.Errorf("spawn command: %w", err)
	}
	return nil
}
