// Package httpserver serves the signup pages over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/signupd/internal/logging"
)

const readHeaderTimeout = 5 * time.Second

// UserAdder creates accounts; *services.UserService satisfies it.
type UserAdder interface {
	AddUser(ctx context.Context, username, password, email string) error
}

// Pinger reports storage reachability; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	staticPath      string
	shutdownTimeout time.Duration
	users           UserAdder
	db              Pinger
	logger          logging.Logger
	pages           pages
}

func NewHTTPServer(a, staticPath string, shutdownTimeout time.Duration, us UserAdder, db Pinger, l logging.Logger) (*HTTPServer, error) {
	p, err := loadPages()
	if err != nil {
		return nil, err
	}
	return &HTTPServer{
		address:         a,
		staticPath:      staticPath,
		shutdownTimeout: shutdownTimeout,
		users:           us,
		db:              db,
		logger:          l.With("module", "http_server"),
		pages:           p,
	}, nil
}

// Handler returns the routed handler with middleware applied.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Get("/signup", s.signupForm)
	r.Post("/signup", s.signup)
	r.Get("/healthz", s.healthz)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticPath))))
	r.NotFound(s.notFound)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
