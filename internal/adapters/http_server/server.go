package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Options struct {
	RateLimitRPS   float64 // <= 0 disables the limiter
	RateLimitBurst int
	RateLimitIdle  time.Duration // per-client buckets idle this long are dropped
	Timeout        time.Duration
}

type Server struct {
	mux     *chi.Mux
	limiter *ClientLimiter // nil when disabled
}

func New(opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	m := chi.NewRouter()

	// All middlewares go here (before any routes are added)
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(opts.Timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))
	m.Use(SecureHeaders)

	s := &Server{mux: m}
	if opts.RateLimitRPS > 0 {
		s.limiter = NewClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst, opts.RateLimitIdle)
	}
	return s
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
