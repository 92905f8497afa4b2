// Package settings reads optional launcher preferences from settings.toml
// in the config directory.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/shlex"
)

const (
	FileName     = "settings.toml"
	DefaultShell = "bash -c"
)

type Settings struct {
	// Shell is the command line that receives the entry's command as its
	// final argument.
	Shell string `toml:"shell"`
}

func Default() Settings {
	return Settings{Shell: DefaultShell}
}

// Load reads dir/settings.toml. A missing file yields the defaults.
func Load(dir string) (Settings, error) {
	s := Default()
	path := filepath.Join(dir, FileName)
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(s.Shell) == "" {
		s.Shell = DefaultShell
	}
	return s, nil
}

// ShellArgs splits a shell command line such as `bash -c` or
// `sh -c` into argv form.
func ShellArgs(cmdline string) ([]string, error) {
	args, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parse shell %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("shell command line is empty")
	}
	return args, nil
}
