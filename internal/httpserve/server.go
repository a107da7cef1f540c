// Package httpserve serves a local directory over HTTP with request
// logging and graceful shutdown.
package httpserve

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/rcli/internal/clock"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Config describes what to serve and how.
type Config struct {
	Dir               string
	Port              int
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}

// Server is a static file server for one directory.
type Server struct {
	cfg    Config
	root   string
	logger zerolog.Logger
	clock  clock.Clock
	newID  func() string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and lifecycle logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock replaces the clock used to time requests.
func WithClock(c clock.Clock) Option {
	return func(s *Server) {
		s.clock = c
	}
}

// WithRequestIDs replaces the request id generator.
func WithRequestIDs(gen func() string) Option {
	return func(s *Server) {
		s.newID = gen
	}
}

// New validates cfg and returns a Server. The directory must exist.
func New(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Dir == "" {
		cfg.Dir = constants.DefaultHTTPDir
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = constants.DefaultShutdownTimeout
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", errors.ErrInvalidArgument, cfg.Port)
	}

	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.WithKind(errors.ErrIO, err, "resolving %s", cfg.Dir)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotADirectory, cfg.Dir)
	}

	s := &Server{
		cfg:    cfg,
		root:   root,
		logger: zerolog.Nop(),
		clock:  clock.RealClock{},
		newID:  newRequestID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the absolute directory being served.
func (s *Server) Root() string {
	return s.root
}

// Handler returns the router: a health endpoint plus the file tree.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestIDMiddleware, s.loggingMiddleware)

	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.root))).Methods(http.MethodGet, http.MethodHead)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ListenAndServe listens on the configured port and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("%w: listening on %s: %w", errors.ErrServerFailed, s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down,
// waiting up to the shutdown timeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	s.logger.Info().
		Str("dir", s.root).
		Str("addr", ln.Addr().String()).
		Msg("serving directory")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%w: %w", errors.ErrServerFailed, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%w: shutdown: %w", errors.ErrServerFailed, err)
		}
		return nil
	})

	return g.Wait()
}
