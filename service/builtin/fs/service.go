package fs

import (
	"github.com/viant/afs"
	"github.com/viant/termsh/engine"
)

// Service implements the file and directory built-ins over viant/afs,
// resolving every operand against the session's virtual working directory.
type Service struct {
	fs      afs.Service
	session *engine.Session
}

// New creates a file-operation service bound to the supplied session.
func New(session *engine.Session) *Service {
	return &Service{fs: afs.New(), session: session}
}

// Register binds all file built-ins to the registry.
func (s *Service) Register(registry *engine.Registry) {
	registry.Register("ls", "List directory contents", s.list)
	registry.Register("dir", "List directory contents (Windows)", s.list)
	registry.Register("cd", "Change directory", s.changeDir)
	registry.Register("pwd", "Print working directory", s.printDir)
	registry.Register("mkdir", "Create directory", s.makeDirs)
	registry.Register("rmdir", "Remove directory", s.removeDirs)
	registry.Register("rm", "Remove files or directories", s.remove)
	registry.Register("cp", "Copy files or directories", s.copy)
	registry.Register("mv", "Move/rename files or directories", s.move)
	registry.Register("cat", "Display file contents", s.concat)
	registry.Register("touch", "Create empty file or update timestamp", s.touch)
}

func hasFlag(args []string, flags ...string) bool {
	for _, arg := range args {
		for _, flag := range flags {
			if arg == flag {
				return true
			}
		}
	}
	return false
}

func withoutFlags(args []string, flags ...string) []string {
	ret := make([]string, 0, len(args))
outer:
	for _, arg := range args {
		for _, flag := range flags {
			if arg == flag {
				continue outer
			}
		}
		ret = append(ret, arg)
	}
	return ret
}
