// Package gateway exposes the terminal over HTTP: a JSON execute endpoint,
// a system-information API, command suggestions, a WebSocket channel and an
// embedded single-page client. Each web client gets its own isolated
// terminal session keyed by a cookie.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/viant/termsh"
	"github.com/viant/termsh/service/monitor"
)

const sessionCookie = "termsh_session"

// executeRequest is the POST /execute payload.
type executeRequest struct {
	Command string `json:"command"`
}

// executeResponse mirrors the result triple plus the session directory so
// the client can track cd.
type executeResponse struct {
	Command   string `json:"command"`
	Output    string `json:"output"`
	ExitCode  int    `json:"exit_code"`
	Error     string `json:"error"`
	Directory string `json:"directory"`
}

// systemInfoResponse is the GET /api/system/info summary.
type systemInfoResponse struct {
	CurrentDirectory    string `json:"current_directory"`
	SupportedCommands   int    `json:"supported_commands"`
	CommandHistoryCount int    `json:"command_history_count"`
	Uptime              string `json:"uptime,omitempty"`
}

// Server is the HTTP front end. It contains no command logic; it only
// renders engine results.
type Server struct {
	service    *termsh.Service
	sessions   *sessionManager
	httpServer *http.Server
}

// New creates a gateway over the supplied façade.
func New(service *termsh.Service) *Server {
	s := &Server{
		service:  service,
		sessions: newSessionManager(service),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/execute", s.handleExecute)
	mux.HandleFunc("/api/system/info", s.handleSystemInfo)
	mux.HandleFunc("/api/system/stats", s.handleSystemStats)
	mux.HandleFunc("/api/commands/suggest", s.handleSuggest)
	mux.HandleFunc("/ws", s.handleWebSocket)

	config := service.Config()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:           logRequests(recoverPanics(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe runs the server until it fails or is shut down.
func (s *Server) ListenAndServe() error {
	log.Printf("web terminal listening on %v", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server and releases all client terminals.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.sessions.close()
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the wired handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// clientSession resolves the caller's terminal from the session cookie,
// minting a fresh session (and cookie) on first contact.
func (s *Server) clientSession(w http.ResponseWriter, r *http.Request) (*session, error) {
	var id string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		id = cookie.Value
	}
	newID, sess, err := s.sessions.acquire(id)
	if err != nil {
		return nil, err
	}
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
		})
	}
	return sess, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var request executeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, &executeResponse{Error: "invalid request body", ExitCode: 1})
		return
	}
	sess, err := s.clientSession(w, r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, &executeResponse{Error: err.Error(), ExitCode: 1})
		return
	}
	writeJSON(w, http.StatusOK, sess.execute(r.Context(), request.Command))
}

func (s *Server) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	sess, err := s.clientSession(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	eng := sess.terminal.Engine
	response := &systemInfoResponse{
		CurrentDirectory:    eng.Session().Directory(),
		SupportedCommands:   len(eng.Registry().Descriptions()),
		CommandHistoryCount: eng.Session().History().Len(),
	}
	if collector := s.service.Collector(); collector != nil {
		if uptime, err := collector.Uptime(); err == nil {
			response.Uptime = monitor.FormatUptime(uptime)
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleSystemStats(w http.ResponseWriter, r *http.Request) {
	collector := s.service.Collector()
	if collector == nil {
		http.Error(w, "metrics collector unavailable", http.StatusServiceUnavailable)
		return
	}
	snapshot, err := collector.Snapshot(s.service.Config().Metrics.ProcessLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess, err := s.clientSession(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"suggestions": sess.terminal.Engine.Registry().Names(),
		})
		return
	}
	writeJSON(w, http.StatusOK, sess.terminal.Advisor.Suggest(query))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
