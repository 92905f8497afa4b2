package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/baaaaaaaka/float-launcher/internal/catalog"
	"github.com/baaaaaaaka/float-launcher/internal/settings"
)

// session bundles what every subcommand needs: the resolved config dir,
// the catalog store and the logger.
type session struct {
	dir   string
	store *catalog.Store
	log   *logrus.Logger
	close func()
}

func (o *rootOptions) open() (*session, error) {
	dir := o.configDir
	if dir == "" {
		d, err := catalog.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	log, closeLog, err := newLogger(o.logFile)
	if err != nil {
		return nil, err
	}

	store, err := catalog.NewStore(dir, log)
	if err != nil {
		closeLog()
		return nil, err
	}
	return &session{dir: dir, store: store, log: log, close: closeLog}, nil
}

func (s *session) shellArgs(override string) ([]string, error) {
	cmdline := override
	if cmdline == "" {
		st, err := settings.Load(s.dir)
		if err != nil {
			return nil, err
		}
		cmdline = st.Shell
	}
	return settings.ShellArgs(cmdline)
}

func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}
