package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// shutdownTimeout bounds how long active requests may drain after the
// context is cancelled.
const shutdownTimeout = 10 * time.Second

// Server serves the health probe over HTTP. Serve(ctx) blocks until the
// context is cancelled, then shuts down gracefully.
type Server struct {
	addr     string
	settings Settings
	logger   *log.Logger

	// ready is closed once the listener is bound and accepting
	// connections.
	ready chan struct{}

	// resolvedAddr is the bound listen address, valid after ready is
	// closed. Useful when addr uses port 0.
	resolvedAddr net.Addr
}

// New creates a server listening on addr once Serve is called.
func New(addr string, settings Settings, logger *log.Logger) *Server {
	return &Server{
		addr:     addr,
		settings: settings,
		logger:   logger,
		ready:    make(chan struct{}),
	}
}

// Ready returns a channel closed once the server accepts connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the resolved listen address; only valid after Ready() is
// closed.
func (s *Server) Addr() net.Addr {
	return s.resolvedAddr
}

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.settings.Debug {
		s.logger.Debug("health probe", "remote", r.RemoteAddr)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}

// Serve starts accepting connections and blocks until ctx is cancelled,
// then stops accepting and waits up to shutdownTimeout for active
// requests to complete.
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	s.resolvedAddr = listener.Addr()
	close(s.ready)

	s.logger.Info("serving",
		"app", s.settings.AppName,
		"env", s.settings.Environment,
		"version", s.settings.Version,
		"addr", s.resolvedAddr.String())

	httpServer := &http.Server{Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("stopped")
	return nil
}
