// Package mockserver exposes the in-memory simulation over HTTP so the
// remote binding can be pointed at a local process during development.
package mockserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"auctionfront/internal/api/mockapi"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server around one backend simulation.
func New(addr string, backend *mockapi.Backend, logger *log.Logger) *Server {
	router := buildRouter(backend, logger)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
