// Package server exposes drift over HTTP.
//
// Routes:
//
//	GET /healthz                                    liveness probe
//	GET /v1/combinations                            slot tree summary and N
//	GET /v1/features?combination=&seed=             derived feature set as JSON
//	GET /v1/capture.png?combination=&seed=&frames=  PNG capture (cached)
//
// Every request runs on its own [app.App]; nothing is shared between
// requests except the capture cache.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/drift/pkg/cache"
	"github.com/matzehuels/drift/pkg/config"
)

const (
	// DefaultMaxFrames bounds the frames a single capture request may run.
	DefaultMaxFrames = 20_000

	cacheScope      = "v1"
	shutdownTimeout = 10 * time.Second
)

// Options configures a [Server].
type Options struct {
	// Config provides the default seed, canvas size and cache TTL.
	Config *config.Config

	// Cache stores captures. Nil disables caching.
	Cache cache.Cache

	// Logger receives one line per request. Nil discards.
	Logger *log.Logger

	// MaxFrames bounds capture runs. Zero uses DefaultMaxFrames.
	MaxFrames int
}

// Server is the HTTP preview server.
type Server struct {
	cfg       *config.Config
	cache     cache.Cache
	logger    *log.Logger
	maxFrames int
	router    chi.Router
}

// New validates the options and builds the router.
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		cache:     opts.Cache,
		logger:    opts.Logger,
		maxFrames: opts.MaxFrames,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	s.cache = cache.Scoped(s.cache, cacheScope)
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.maxFrames <= 0 {
		s.maxFrames = DefaultMaxFrames
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logging(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/combinations", s.combinations)
		r.Get("/features", s.features)
		r.Get("/capture.png", s.capture)
	})
	s.router = r
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
