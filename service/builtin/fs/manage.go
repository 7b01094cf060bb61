package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/termsh/internal/clock"
)

// makeDirs implements mkdir. Intermediate directories are created and an
// already existing directory is not an error; the first failure aborts the
// remaining operands.
func (s *Service) makeDirs(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "mkdir: missing operand", nil
	}
	for _, name := range args {
		path := s.session.Resolve(name)
		if object, err := s.fs.Object(ctx, path); err == nil {
			if object.IsDir() {
				continue
			}
			return fmt.Sprintf("mkdir: cannot create directory '%v': File exists", name), nil
		}
		if err := s.fs.Create(ctx, path, file.DefaultDirOsMode, true); err != nil {
			return fmt.Sprintf("mkdir: cannot create directory '%v': %v", name, err), nil
		}
	}
	return "", nil
}

// removeDirs implements rmdir: only empty directories are removed.
func (s *Service) removeDirs(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "rmdir: missing operand", nil
	}
	for _, name := range args {
		path := s.session.Resolve(name)
		object, err := s.fs.Object(ctx, path)
		if err != nil {
			return fmt.Sprintf("rmdir: failed to remove '%v': No such file or directory", name), nil
		}
		if !object.IsDir() {
			return fmt.Sprintf("rmdir: failed to remove '%v': Not a directory", name), nil
		}
		objects, err := s.fs.List(ctx, path)
		if err != nil {
			return fmt.Sprintf("rmdir: failed to remove '%v': %v", name, err), nil
		}
		for _, candidate := range objects {
			if filepath.Clean(url.Path(candidate.URL())) != filepath.Clean(path) {
				return fmt.Sprintf("rmdir: failed to remove '%v': Directory not empty", name), nil
			}
		}
		if err := s.fs.Delete(ctx, path); err != nil {
			return fmt.Sprintf("rmdir: failed to remove '%v': %v", name, err), nil
		}
	}
	return "", nil
}

// remove implements rm. Directories require the -r flag.
func (s *Service) remove(ctx context.Context, args []string) (string, error) {
	recursive := hasFlag(args, "-r")
	names := withoutFlags(args, "-r")
	if len(names) == 0 {
		return "rm: missing operand", nil
	}
	for _, name := range names {
		path := s.session.Resolve(name)
		object, err := s.fs.Object(ctx, path)
		if err != nil {
			return fmt.Sprintf("rm: cannot remove '%v': No such file or directory", name), nil
		}
		if object.IsDir() && !recursive {
			return fmt.Sprintf("rm: cannot remove '%v': Is a directory", name), nil
		}
		if err := s.fs.Delete(ctx, path); err != nil {
			return fmt.Sprintf("rm: cannot remove '%v': %v", name, err), nil
		}
	}
	return "", nil
}

// copy implements cp: the last operand is the destination, -r enables
// recursive directory copy. Copying into an existing directory places the
// source inside it.
func (s *Service) copy(ctx context.Context, args []string) (string, error) {
	recursive := hasFlag(args, "-r")
	names := withoutFlags(args, "-r")
	if len(names) < 2 {
		return "cp: missing destination file operand", nil
	}
	sources, destination := names[:len(names)-1], names[len(names)-1]
	destPath := s.session.Resolve(destination)

	for _, source := range sources {
		srcPath := s.session.Resolve(source)
		object, err := s.fs.Object(ctx, srcPath)
		if err != nil {
			return fmt.Sprintf("cp: cannot stat '%v': No such file or directory", source), nil
		}
		if object.IsDir() && !recursive {
			return fmt.Sprintf("cp: -r not specified; omitting directory '%v'", source), nil
		}
		target := destPath
		if destObject, derr := s.fs.Object(ctx, destPath); derr == nil && destObject.IsDir() {
			target = url.Join(destPath, object.Name())
		}
		if err := s.fs.Copy(ctx, srcPath, target); err != nil {
			return fmt.Sprintf("cp: %v", err), nil
		}
	}
	return "", nil
}

// move implements mv; directories are always supported.
func (s *Service) move(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "mv: missing destination file operand", nil
	}
	sources, destination := args[:len(args)-1], args[len(args)-1]
	destPath := s.session.Resolve(destination)

	for _, source := range sources {
		srcPath := s.session.Resolve(source)
		object, err := s.fs.Object(ctx, srcPath)
		if err != nil {
			return fmt.Sprintf("mv: cannot stat '%v': No such file or directory", source), nil
		}
		target := destPath
		if destObject, derr := s.fs.Object(ctx, destPath); derr == nil && destObject.IsDir() {
			target = url.Join(destPath, object.Name())
		}
		if err := s.fs.Move(ctx, srcPath, target); err != nil {
			return fmt.Sprintf("mv: %v", err), nil
		}
	}
	return "", nil
}

// touch creates missing files and refreshes the modification time of
// existing ones.
func (s *Service) touch(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "touch: missing file operand", nil
	}
	now := clock.Now()
	for _, name := range args {
		path := s.session.Resolve(name)
		if ok, _ := s.fs.Exists(ctx, path); ok {
			// afs has no utime operation; update the timestamp in place.
			if err := os.Chtimes(path, now, now); err != nil {
				return fmt.Sprintf("touch: cannot touch '%v': %v", name, err), nil
			}
			continue
		}
		if err := s.fs.Upload(ctx, path, file.DefaultFileOsMode, strings.NewReader("")); err != nil {
			return fmt.Sprintf("touch: cannot touch '%v': %v", name, err), nil
		}
	}
	return "", nil
}
