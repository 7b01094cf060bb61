package search

import (
	"github.com/viant/afs"
	"github.com/viant/termsh/engine"
)

// Service implements the text and tree search built-ins (grep, find).
type Service struct {
	fs      afs.Service
	session *engine.Session
}

// New creates a search service bound to the supplied session.
func New(session *engine.Session) *Service {
	return &Service{fs: afs.New(), session: session}
}

// Register binds the search built-ins to the registry.
func (s *Service) Register(registry *engine.Registry) {
	registry.Register("grep", "Search text in files", s.grep)
	registry.Register("find", "Find files and directories", s.find)
}
