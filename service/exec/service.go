// Package exec forwards unrecognised command lines verbatim to the host
// shell while preserving the session's virtual working directory and
// environment snapshot.
package exec

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	"github.com/viant/termsh/engine"
)

// Service is the external command fallback. It keeps one local shell
// session per terminal session; command execution blocks until the child
// exits.
type Service struct {
	session *engine.Session
	mux     sync.Mutex
	shell   *gosh.Service
}

// New creates a fallback bound to the supplied session.
func New(session *engine.Session) *Service {
	return &Service{session: session}
}

// Run executes the full original command line through the host shell. The
// child runs in the session's virtual directory with the session's captured
// environment; its exit code surfaces unchanged. Only a failure to spawn
// the shell itself populates Result.Error.
func (s *Service) Run(ctx context.Context, commandLine string) *engine.Result {
	shell, err := s.getShell(ctx)
	if err != nil {
		return &engine.Result{ExitCode: 1, Error: fmt.Sprintf("failed to execute command: %v", err)}
	}

	// The shell session is persistent, so pin it to the virtual working
	// directory before every command.
	if _, _, err := shell.Run(ctx, fmt.Sprintf("cd %q", s.session.Directory())); err != nil {
		return &engine.Result{ExitCode: 1, Error: fmt.Sprintf("failed to change directory: %v", err)}
	}

	output, status, err := shell.Run(ctx, commandLine)
	output = strings.TrimSpace(output)
	if output == "" && err != nil {
		output = err.Error()
	}
	return &engine.Result{Output: output, ExitCode: status}
}

func (s *Service) getShell(ctx context.Context) (*gosh.Service, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.shell != nil {
		return s.shell, nil
	}
	shell, err := gosh.New(ctx, local.New(runner.WithEnvironment(s.session.Env())))
	if err != nil {
		return nil, err
	}
	s.shell = shell
	return shell, nil
}

// Close releases the underlying shell session.
func (s *Service) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.shell == nil {
		return nil
	}
	err := s.shell.Close()
	s.shell = nil
	return err
}
