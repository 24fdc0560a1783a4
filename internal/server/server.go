// Package server exposes the assessment over HTTP: a stateless evaluate
// endpoint, per-answer feedback and the phased session workflow.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"resilience/internal/logs"
	"resilience/internal/metrics"
	"resilience/internal/session"
	"resilience/internal/settings"
)

// Assessment sources used as the metrics "source" label.
const (
	sourceEvaluate = "evaluate"
	sourceSession  = "session"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. Zero values get defaults.
type Options struct {
	Store  *session.Store
	Logger *slog.Logger
	Now    func() time.Time
	// RateLimit caps requests per second across all clients; 0 disables it.
	RateLimit float64
	RateBurst int
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	store   *session.Store
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
	limiter *rate.Limiter
}

// New builds a Server with its own metrics registry.
func New(opts Options) (*Server, error) {
	s := &Server{store: opts.Store, log: opts.Logger, now: opts.Now}
	if s.store == nil {
		s.store = session.NewStore(settings.DefaultSessionTTL)
	}
	if s.log == nil {
		s.log = logs.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	m, err := metrics.New(s.store.Len)
	if err != nil {
		return nil, err
	}
	s.metrics = m
	return s, nil
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(s.throttle)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Get("/questions", s.questions)
	r.Get("/feedback", s.feedback)
	r.Post("/evaluate", s.evaluate)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Delete("/", s.deleteSession)
			r.Put("/answers", s.putAnswers)
			r.Post("/next", s.next)
			r.Post("/back", s.step((*session.Session).Back))
			r.Post("/restart", s.step(func(sess *session.Session) error {
				sess.Restart()
				return nil
			}))
			r.Get("/preview", s.preview)
			r.Get("/result", s.result)
			r.Get("/report.txt", s.reportText)
			r.Get("/report.csv", s.reportCSV)
			r.Get("/report.pdf", s.reportPDF)
		})
	})
	return r
}

// observe records request metrics and logs each request at debug level.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		elapsed := s.now().Sub(start)
		s.metrics.ObserveRequest(r.Method, route, code, elapsed)
		s.log.Debug("request",
			"method", r.Method,
			"route", route,
			"status", code,
			"elapsed", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// throttle rejects requests over the rate limit with 429.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, errorBody{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully. Expired sessions are swept in the background.
func (s *Server) Run(ctx context.Context, cfg *settings.Settings) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interval := cfg.SessionTTL() / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	go s.store.Janitor(ctx, interval, func(n int) {
		s.metrics.ObserveEvicted(n)
		s.log.Info("sessions evicted", "count", n)
	})

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
