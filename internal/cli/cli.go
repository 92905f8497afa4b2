package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/float-launcher/internal/launch"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configDir string
	logFile   string
	shell     string
}

// Execute runs the command line and returns the process exit code. When a
// launched command fails, its exit status is passed through.
func Execute() int {
	cmd := newRootCmd()
	return exitCode(cmd.Execute(), cmd.ErrOrStderr())
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *launch.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "float-launcher",
		Short:         "Search and run saved shell commands",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       buildVersion(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLaunch(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configDir, "config", "c", "", "Config directory (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Append debug logs to this file")
	cmd.PersistentFlags().StringVar(&opts.shell, "shell", "", "Shell command line used to run entries (default: settings.toml, else \"bash -c\")")

	cmd.AddCommand(
		newAddCmd(opts),
		newRemoveCmd(opts),
		newLaunchCmd(opts),
		newListCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
