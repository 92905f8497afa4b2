//go:build unix

package launch

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process with argv. It only returns on failure.
func Exec(argv []string, env []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("find shell %q: %w", argv[0], err)
	}
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
