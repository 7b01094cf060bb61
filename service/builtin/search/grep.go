package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// grep matches a regular expression against the named files, emitting
// file:line:content rows. A per-file read failure becomes its own output
// line rather than aborting the batch.
func (s *Service) grep(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "grep: missing arguments", nil
	}
	pattern, err := regexp.Compile(args[0])
	if err != nil {
		return fmt.Sprintf("grep: invalid pattern: %v", err), nil
	}

	var results []string
	for _, name := range args[1:] {
		data, err := s.fs.DownloadWithURL(ctx, s.session.Resolve(name))
		if err != nil {
			results = append(results, fmt.Sprintf("grep: %v: %v", name, err))
			continue
		}
		for i, line := range strings.Split(string(data), "\n") {
			if pattern.MatchString(line) {
				results = append(results, fmt.Sprintf("%v:%d:%v", name, i+1, strings.TrimSpace(line)))
			}
		}
	}
	return strings.Join(results, "\n"), nil
}
