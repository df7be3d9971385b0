package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/websocket"
)

const (
	asciiCols = 64
	asciiRows = 36

	shutdownTimeout = 2 * time.Second
)

// Server exposes the spectator feed over HTTP and websocket. Spectators
// cannot send input to the game.
type Server struct {
	hub *Hub
}

func New(hub *Hub) *Server {
	return &Server{hub: hub}
}

func (s *Server) Hub() *Hub { return s.hub }

// Handler routes:
//
//	GET /           latest snapshot as JSON
//	GET /ascii      latest frame as plain text
//	    /subscribe  websocket stream of JSON snapshots
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetSit())
	mux.HandleFunc("/ascii", s.HandleGetASCII())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}

// ListenAndServe serves the feed on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		// Hijacked websocket connections are not tracked by Shutdown; closing
		// the hub ends their handlers.
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server: shutdown error: %v\n", err)
		}
	}()

	fmt.Printf("Server: spectator feed listening on %s\n", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	return nil
}
