package search

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
)

// find walks the tree beneath the start path (first argument, default ".")
// and reports every entry whose name contains the filter (second argument,
// default "*" meaning match-all), as paths relative to the current
// directory.
func (s *Service) find(ctx context.Context, args []string) (string, error) {
	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	filter := "*"
	if len(args) > 1 {
		filter = args[1]
	}

	startPath := s.session.Resolve(start)
	objects, err := s.fs.List(ctx, startPath, option.NewRecursive(true))
	if err != nil {
		return fmt.Sprintf("find: %v", err), nil
	}

	currentDir := s.session.Directory()
	var results []string
	for _, object := range objects {
		objectPath := filepath.Clean(url.Path(object.URL()))
		if objectPath == filepath.Clean(startPath) {
			continue // the start directory itself
		}
		if filter != "*" && !strings.Contains(object.Name(), filter) {
			continue
		}
		rel, err := filepath.Rel(currentDir, objectPath)
		if err != nil {
			rel = objectPath
		}
		results = append(results, rel)
	}
	return strings.Join(results, "\n"), nil
}
