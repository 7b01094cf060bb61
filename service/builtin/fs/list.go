package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// list implements ls/dir. Dot entries are hidden unless -a/--all is given;
// -l/--long switches to the long format with permissions, size and
// modification time.
func (s *Service) list(ctx context.Context, args []string) (string, error) {
	showHidden := hasFlag(args, "-a", "--all")
	longFormat := hasFlag(args, "-l", "--long")

	dir := s.session.Directory()
	objects, err := s.fs.List(ctx, dir)
	if err != nil {
		return fmt.Sprintf("ls: %v", err), nil
	}

	entries := make([]storage.Object, 0, len(objects))
	for _, object := range objects {
		if filepath.Clean(url.Path(object.URL())) == filepath.Clean(dir) {
			continue // the listed directory itself
		}
		if !showHidden && strings.HasPrefix(object.Name(), ".") {
			continue
		}
		entries = append(entries, object)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	lines := make([]string, 0, len(entries))
	for _, object := range entries {
		if longFormat {
			lines = append(lines, fmt.Sprintf("%s %8d %s %s",
				permissionString(object.Mode()),
				object.Size(),
				object.ModTime().Format("Jan 02 15:04"),
				object.Name()))
		} else {
			lines = append(lines, object.Name())
		}
	}
	return strings.Join(lines, "\n"), nil
}

// permissionString renders the lower nine POSIX mode bits as rwxrwxrwx,
// with '-' for unset bits.
func permissionString(mode os.FileMode) string {
	const symbols = "rwxrwxrwx"
	ret := []byte("---------")
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			ret[i] = symbols[i]
		}
	}
	return string(ret)
}
