package gateway

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// The page is served from the same origin; permissive checking keeps
	// local development simple.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket serves an interactive channel: the client sends
// {"command": ...} frames and receives executeResponse frames, sharing the
// same session as the REST endpoint via the cookie.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess, err := s.clientSession(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var request executeRequest
		if err := conn.ReadJSON(&request); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}
		response := sess.execute(r.Context(), request.Command)
		if err := conn.WriteJSON(response); err != nil {
			log.Printf("websocket write failed: %v", err)
			return
		}
	}
}
