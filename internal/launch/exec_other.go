//go:build !unix

package launch

import "os"

// Exec runs argv as a child with the terminal attached, since the process
// cannot be replaced on this platform. The child's non-zero status comes
// back as *ExitError.
func Exec(argv []string, env []string) error {
	return Run(argv, env, os.Stdin, os.Stdout, os.Stderr)
}
