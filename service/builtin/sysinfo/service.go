package sysinfo

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/viant/termsh/engine"
	"github.com/viant/termsh/internal/clock"
)

// defaultDateLayout approximates the conventional date(1) output.
const defaultDateLayout = "Mon Jan 02 15:04:05 MST 2006"

// Service implements the user, host, time and environment built-ins. The
// env command reads the session's environment snapshot, never the real
// process environment.
type Service struct {
	session *engine.Session
}

// New creates a sysinfo service bound to the supplied session.
func New(session *engine.Session) *Service {
	return &Service{session: session}
}

// Register binds the system-information built-ins to the registry.
func (s *Service) Register(registry *engine.Registry) {
	registry.Register("whoami", "Display current user", s.whoami)
	registry.Register("hostname", "Display system hostname", s.hostname)
	registry.Register("date", "Display current date and time", s.date)
	registry.Register("echo", "Display text or variables", s.echo)
	registry.Register("env", "Display environment variables", s.env)
}

func (s *Service) whoami(_ context.Context, _ []string) (string, error) {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username, nil
	}
	if name, ok := s.session.LookupEnv("USER"); ok {
		return name, nil
	}
	return "unknown", nil
}

func (s *Service) hostname(_ context.Context, _ []string) (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return fmt.Sprintf("hostname: %v", err), nil
	}
	return name, nil
}

// date formats the current time. Arguments, when given, are joined and used
// verbatim as the layout string.
func (s *Service) date(_ context.Context, args []string) (string, error) {
	layout := defaultDateLayout
	if len(args) > 0 {
		layout = strings.Join(args, " ")
	}
	return clock.Now().Format(layout), nil
}

func (s *Service) echo(_ context.Context, args []string) (string, error) {
	return strings.Join(args, " "), nil
}

// env lists the whole snapshot as sorted KEY=VALUE lines, or resolves the
// named variables only.
func (s *Service) env(_ context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return strings.Join(s.session.Environ(), "\n"), nil
	}
	lines := make([]string, 0, len(args))
	for _, name := range args {
		if value, ok := s.session.LookupEnv(name); ok {
			lines = append(lines, value)
		} else {
			lines = append(lines, fmt.Sprintf("%v: undefined variable", name))
		}
	}
	return strings.Join(lines, "\n"), nil
}
