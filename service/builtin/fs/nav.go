package fs

import (
	"context"
	"fmt"
	"os"
)

// changeDir implements cd. `~` expands to the user home; `-` is not
// tracked. The session directory is only updated when the target exists.
func (s *Service) changeDir(_ context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "cd: missing argument", nil
	}
	target := args[0]
	switch target {
	case "~":
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Sprintf("cd: %v", err), nil
		}
		target = home
	case "-":
		return "Previous directory not tracked", nil
	}
	if err := s.session.ChangeDirectory(target); err != nil {
		return fmt.Sprintf("cd: %v", err), nil
	}
	return "", nil
}

func (s *Service) printDir(_ context.Context, _ []string) (string, error) {
	return s.session.Directory(), nil
}
