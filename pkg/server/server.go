package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/report"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

const (
	assetsPrefix = "/assets/"
	livePath     = "/ws"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFormConfig sets the configuration every controller is built with.
func WithFormConfig(cfg form.Config) Option {
	return func(s *Server) {
		s.formConfig = cfg
	}
}

// WithPages replaces the page renderer.
func WithPages(pages *vanilla.Renderer) Option {
	return func(s *Server) {
		if pages != nil {
			s.pages = pages
		}
	}
}

// WithPage sets the page chrome (title, submit label).
func WithPage(page vanilla.Page) Option {
	return func(s *Server) {
		s.page = page
	}
}

// WithRenderers registers extra report renderers selectable through
// ?format= on the submit endpoint.
func WithRenderers(renderers ...render.Renderer) Option {
	return func(s *Server) {
		s.extra = append(s.extra, renderers...)
	}
}

// WithMetrics replaces the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLive toggles the WebSocket endpoint and the runtime script.
func WithLive(enabled bool) Option {
	return func(s *Server) {
		s.live = enabled
	}
}

// Server wires the form to HTTP transports.
type Server struct {
	logger     *slog.Logger
	formConfig form.Config
	pages      *vanilla.Renderer
	page       vanilla.Page
	registry   *render.Registry
	extra      []render.Renderer
	metrics    *Metrics
	live       bool
	router     chi.Router
}

// New builds the server and its routes.
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger:     slog.New(slog.DiscardHandler),
		formConfig: form.DefaultConfig(),
		page:       vanilla.DefaultPage(),
		live:       true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if err := s.formConfig.Validate(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if s.pages == nil {
		pages, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.pages = pages
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	renderers := append([]render.Renderer{report.JSONRenderer{}, report.TextRenderer{}, s.pages}, s.extra...)
	registry, err := render.NewRegistry(renderers...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.registry = registry

	s.page.Form = s.formConfig
	s.page.StylesheetURL = assetsPrefix + vanilla.StylesheetName
	if s.live {
		s.page.ScriptURL = assetsPrefix + vanilla.RuntimeScriptName
		s.page.LiveURL = livePath
	}

	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Post("/", s.handleFormPost)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/fields/{field}", s.handleFieldInput)
		r.Post("/submit", s.handleSubmit)
	})
	if s.live {
		r.Get(livePath, s.handleLive)
	}
	r.Handle(assetsPrefix+"*", http.StripPrefix(assetsPrefix, http.FileServerFS(vanilla.AssetsFS())))
	r.Handle("/metrics", s.metrics.Handler())
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the collector fed by every controller.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

// session is one document with its controller.
type session struct {
	controller *form.Controller
	notes      *form.RecordingNotifier
}

func (s *Server) newSession(values rules.Values, banner bool) (*session, error) {
	page := s.page
	page.Values = values
	doc, err := s.pages.Document(page)
	if err != nil {
		return nil, err
	}

	notes := &form.RecordingNotifier{}
	notifiers := form.Notifiers{notes}
	if banner {
		notifiers = append(notifiers, vanilla.StatusNotifier{Doc: doc, ID: page.StatusID})
	}
	controller, err := form.New(doc,
		form.WithConfig(s.formConfig),
		form.WithLogger(s.logger.With("component", "form")),
		form.WithObserver(s.metrics),
		form.WithNotifier(notifiers),
	)
	if err != nil {
		return nil, err
	}
	return &session{controller: controller, notes: notes}, nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
