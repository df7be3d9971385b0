// File: server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"golang.org/x/net/websocket"
)

// HandleSubscribe streams snapshots to a spectator until either side hangs up
// or the hub closes.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		sub := s.hub.subscribe()
		if sub == nil {
			return
		}
		defer s.hub.unsubscribe(sub)

		fmt.Printf("Server: spectator %s connected\n", connectionAddr)
		defer fmt.Printf("Server: spectator %s disconnected\n", connectionAddr)

		closed := make(chan struct{})
		go s.readLoop(ws, closed)

		if latest, ok := s.hub.Latest(); ok {
			if err := websocket.JSON.Send(ws, &latest); err != nil {
				return
			}
		}

		for {
			select {
			case snapshot, ok := <-sub.frames:
				if !ok {
					return
				}
				if err := websocket.JSON.Send(ws, &snapshot); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}

// readLoop discards anything the spectator sends and closes closed when the
// connection ends.
func (s *Server) readLoop(ws *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		var message string
		if err := websocket.Message.Receive(ws, &message); err != nil {
			if err != io.EOF {
				fmt.Printf("Server: read from %s ended: %v\n", ws.Request().RemoteAddr, err)
			}
			return
		}
	}
}

// HandleGetSit returns the latest snapshot as JSON.
func (s *Server) HandleGetSit() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := s.latest(w, r)
		if !ok {
			return
		}

		payload, err := json.Marshal(snapshot)
		if err != nil {
			http.Error(w, "Error encoding game state", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			fmt.Println("Server: error writing HTTP game state:", err)
		}
	}
}

// HandleGetASCII returns the latest frame drawn as text.
func (s *Server) HandleGetASCII() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := s.latest(w, r)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, render.Frame(snapshot, asciiCols, asciiRows)); err != nil {
			fmt.Println("Server: error writing ASCII frame:", err)
		}
	}
}

// latest writes an error response and returns false when the request cannot
// be answered with a snapshot.
func (s *Server) latest(w http.ResponseWriter, r *http.Request) (game.Snapshot, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return game.Snapshot{}, false
	}
	if r.URL.Path != "/" && r.URL.Path != "/ascii" {
		http.NotFound(w, r)
		return game.Snapshot{}, false
	}
	snapshot, ok := s.hub.Latest()
	if !ok {
		http.Error(w, "No frame rendered yet", http.StatusServiceUnavailable)
		return game.Snapshot{}, false
	}
	return snapshot, true
}
