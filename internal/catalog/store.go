package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"
)

// Store reads and writes the catalog file. Every operation holds an
// exclusive file lock so concurrent launcher invocations never interleave
// a read-modify-write.
type Store struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
	log  logrus.FieldLogger
}

func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, "float-launcher"), nil
}

// NewStore opens the catalog in dir, creating the directory and an empty
// catalog file when they do not exist yet.
func NewStore(dir string, log logrus.FieldLogger) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(dir, DatabaseFile)
	s := &Store{
		path: path,
		lock: flock.New(path + ".lock"),
		log:  log.WithField("catalog", path),
	}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load() (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock catalog: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	c, err := s.loadUnlocked()
	if err != nil {
		return nil, err
	}
	s.log.WithField("entries", len(c)).Debug("catalog loaded")
	return c, nil
}

func (s *Store) Update(fn func(*Catalog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	c, err := s.loadUnlocked()
	if err != nil {
		return err
	}
	if err := fn(&c); err != nil {
		return err
	}
	return s.saveUnlocked(c)
}

func (s *Store) Add(e Entry) error {
	err := s.Update(func(c *Catalog) error { return c.Add(e) })
	if err == nil {
		s.log.WithField("name", e.Name).Info("entry added")
	}
	return err
}

func (s *Store) Remove(name string) error {
	err := s.Update(func(c *Catalog) error { return c.Remove(name) })
	if err == nil {
		s.log.WithField("name", name).Info("entry removed")
	}
	return err
}

func (s *Store) ensureFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock catalog: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat catalog: %w", err)
	}
	return s.saveUnlocked(Catalog{})
}

func (s *Store) loadUnlocked() (Catalog, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c == nil {
		c = Catalog{}
	}
	return c, nil
}

func (s *Store) saveUnlocked(c Catalog) error {
	if c == nil {
		c = Catalog{}
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	b = append(b, '\n')

	if err := atomicWriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
