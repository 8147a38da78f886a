package server

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server with start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
}

const (
	maxHeaderBytes    = 1 << 20
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Run starts listening on the given port ("8080" and ":8080" both work).
func (s *Server) Run(port string, handler http.Handler) error {
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	s.httpServer = &http.Server{
		Addr:              port,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server, letting in-flight requests complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
