package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
}

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

var errNotConfigured = errors.New("server: no address or handler, use New")

var (
	corsMethods = []string{http.MethodGet, http.MethodOptions}
	corsHeaders = []string{"Content-Type", "Accept"}
)

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// WithCORS allows browser clients from origins to call the read-only API.
// An empty list allows any origin.
func WithCORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods(corsMethods),
		handlers.AllowedHeaders(corsHeaders),
	)(next)
}

// New builds a server for addr (host:port). Construct it before starting Run
// in a goroutine so Shutdown never races with the assignment.
func New(addr string, handler http.Handler) *Server {
	return &Server{httpServer: newHTTPServer(addr, handler)}
}

// Run blocks until the server stops. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Run() error {
	if s.httpServer == nil {
		return errNotConfigured
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
