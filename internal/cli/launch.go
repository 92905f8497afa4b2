package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/float-launcher/internal/env"
	"github.com/baaaaaaaka/float-launcher/internal/launch"
	"github.com/baaaaaaaka/float-launcher/internal/tui"
)

var (
	selectEntry = tui.Select
	execCommand = launch.Exec
	isTerminal  = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

var errNotTerminal = errors.New("the launcher needs an interactive terminal")

func newLaunchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Open the launcher (running with no subcommand does the same)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLaunch(cmd, root)
		},
	}
}

func runLaunch(_ *cobra.Command, root *rootOptions) error {
	s, err := root.open()
	if err != nil {
		return err
	}
	defer s.close()

	entries, err := s.store.Load()
	if err != nil {
		return err
	}
	shell, err := s.shellArgs(root.shell)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNotTerminal
	}

	res, err := selectEntry(entries)
	if err != nil {
		return fmt.Errorf("launcher: %w", err)
	}
	if res.Cancelled {
		s.log.Debug("launcher cancelled")
		return nil
	}

	argv := launch.Argv(shell, res.Command)
	s.log.WithFields(logrus.Fields{"name": res.Name, "argv": argv}).Info("running entry")
	return execCommand(argv, env.WithEntry(os.Environ(), res.Name))
}
