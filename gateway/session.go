package gateway

import (
	"context"
	"sync"

	"github.com/viant/termsh"
	"github.com/viant/termsh/internal/idgen"
)

// session wraps one client's terminal. The engine itself is synchronous and
// lock-free, so concurrent requests for the same client are serialized
// here.
type session struct {
	terminal *termsh.Terminal
	mux      sync.Mutex
}

// execute runs one command line under the session lock.
func (s *session) execute(ctx context.Context, commandLine string) *executeResponse {
	s.mux.Lock()
	defer s.mux.Unlock()
	result := s.terminal.Engine.Execute(ctx, commandLine)
	return &executeResponse{
		Command:   commandLine,
		Output:    result.Output,
		ExitCode:  result.ExitCode,
		Error:     result.Error,
		Directory: s.terminal.Engine.Session().Directory(),
	}
}

// sessionManager mints and tracks per-client terminals. Every client gets
// its own engine instance with its own working directory, so clients never
// race on shared session state.
type sessionManager struct {
	service  *termsh.Service
	mux      sync.RWMutex
	sessions map[string]*session
}

func newSessionManager(service *termsh.Service) *sessionManager {
	return &sessionManager{
		service:  service,
		sessions: make(map[string]*session),
	}
}

// acquire returns the session for id, creating a fresh one (with a new id)
// when id is empty or unknown.
func (m *sessionManager) acquire(id string) (string, *session, error) {
	if id != "" {
		m.mux.RLock()
		existing, ok := m.sessions[id]
		m.mux.RUnlock()
		if ok {
			return id, existing, nil
		}
	}

	terminal, err := m.service.NewTerminal()
	if err != nil {
		return "", nil, err
	}
	id = idgen.New()
	created := &session{terminal: terminal}
	m.mux.Lock()
	m.sessions[id] = created
	m.mux.Unlock()
	return id, created, nil
}

// close releases all tracked terminals.
func (m *sessionManager) close() {
	m.mux.Lock()
	defer m.mux.Unlock()
	for id, sess := range m.sessions {
		_ = sess.terminal.Close()
		delete(m.sessions, id)
	}
}
