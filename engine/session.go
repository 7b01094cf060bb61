package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Session holds the mutable state shared across one user's command sequence:
// the virtual working directory, the command history and a snapshot of the
// process environment taken at session creation. Mutating the snapshot never
// touches the real process environment.
type Session struct {
	dir     string
	env     map[string]string
	history *History
}

// NewSession creates a session rooted at the process working directory.
func NewSession() (*Session, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return NewSessionAt(dir)
}

// NewSessionAt creates a session rooted at the supplied directory.
func NewSessionAt(dir string) (*Session, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("invalid session directory %v: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("session directory %v is not a directory", dir)
	}
	return &Session{
		dir:     abs,
		env:     environSnapshot(),
		history: &History{},
	}, nil
}

func environSnapshot() map[string]string {
	env := make(map[string]string)
	for _, pair := range os.Environ() {
		if idx := strings.Index(pair, "="); idx > 0 {
			env[pair[:idx]] = pair[idx+1:]
		}
	}
	return env
}

// Directory returns the current virtual working directory, always an
// absolute path to an existing directory.
func (s *Session) Directory() string {
	return s.dir
}

// ChangeDirectory updates the working directory. The target must be an
// existing directory; on failure the current directory is left unchanged.
func (s *Session) ChangeDirectory(dir string) error {
	abs := s.Resolve(dir)
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%v: No such file or directory", dir)
	}
	s.dir = abs
	return nil
}

// Resolve turns a possibly relative target into an absolute path against
// the current working directory.
func (s *Session) Resolve(target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(s.dir, target)
}

// LookupEnv reads a variable from the session environment snapshot.
func (s *Session) LookupEnv(name string) (string, bool) {
	value, ok := s.env[name]
	return value, ok
}

// SetEnv updates the session environment snapshot only.
func (s *Session) SetEnv(name, value string) {
	s.env[name] = value
}

// Environ returns the snapshot as sorted KEY=VALUE pairs.
func (s *Session) Environ() []string {
	pairs := make([]string, 0, len(s.env))
	for k, v := range s.env {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return pairs
}

// Env returns a copy of the environment snapshot.
func (s *Session) Env() map[string]string {
	env := make(map[string]string, len(s.env))
	for k, v := range s.env {
		env[k] = v
	}
	return env
}

// History exposes the command log for display.
func (s *Session) History() *History {
	return s.history
}

// Record appends a command line to the history with the directory it was
// issued from.
func (s *Session) Record(command string) {
	s.history.Append(command, s.dir)
}
