package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/atelier/internal/auth/session"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// purgeInterval is how often expired session rows are swept. Resolution is
// lazy either way; the sweep only bounds table growth.
const purgeInterval = time.Hour

// Config defines the inputs for the API server.
type Config struct {
	HTTPAddr string
	Handler  http.Handler
	Sessions *session.Manager
}

// Server hosts the API HTTP server and the session purge loop.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   *session.Manager
}

// NewServer builds a configured API server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Handler == nil {
		return nil, errors.New("handler is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           otelhttp.NewHandler(config.Handler, "api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		sessions:   config.Sessions,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if s.sessions != nil {
		go s.purgeLoop(ctx)
	}

	serveErr := make(chan error, 1)
	log.Printf("listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// purgeLoop sweeps expired sessions until the context ends.
func (s *Server) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.sessions.PurgeExpired(ctx)
			if err != nil {
				log.Printf("purge expired sessions: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("purged %d expired sessions", removed)
			}
		}
	}
}
