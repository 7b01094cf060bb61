package fs

import (
	"context"
	"fmt"
	"strings"
)

// concat implements cat: file contents are joined with a newline between
// files; the first unreadable file aborts the batch.
func (s *Service) concat(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "cat: missing file operand", nil
	}
	contents := make([]string, 0, len(args))
	for _, name := range args {
		data, err := s.fs.DownloadWithURL(ctx, s.session.Resolve(name))
		if err != nil {
			return fmt.Sprintf("cat: %v: %v", name, err), nil
		}
		contents = append(contents, string(data))
	}
	return strings.Join(contents, "\n"), nil
}
