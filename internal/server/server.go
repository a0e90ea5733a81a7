// Package server exposes the dashboard core over HTTP. It serves plain
// tabular and record data only; rendering is the client's concern.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/orient-research/fundscope/internal/config"
	"github.com/orient-research/fundscope/pkg/fundscope/metrics"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
	"github.com/orient-research/fundscope/pkg/fundscope/session"
)

// Server wires the session-scoped workbook state to the HTTP API.
type Server struct {
	cfg  *config.Config
	log  *zap.Logger
	sess *session.Session
}

// New creates a server around one user session.
func New(cfg *config.Config, log *zap.Logger, sess *session.Session) *Server {
	return &Server{cfg: cfg, log: log, sess: sess}
}

// Router builds the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/workbook", s.handleUpload)
		r.Get("/workbook", s.handleOverview)
		r.Delete("/workbook", s.handleReset)

		r.Get("/metrics/summary", s.handleSummary)

		r.Get("/programs", s.handlePrograms)
		r.Get("/programs/{slug}", s.handleProgram)

		r.Route("/sheets/{name}", func(r chi.Router) {
			r.Get("/", s.handleSheet)
			r.Get("/rollup", s.handleRollup)
			r.Get("/filter", s.handleFilter)
			r.Get("/top", s.handleTop)
			r.Get("/export", s.handleExport)
		})
	})
	return r
}

// Run starts the HTTP server and blocks until the context is canceled or
// the listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("listening", zap.String("addr", s.cfg.Addr()))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// respondSoft maps the aggregator's missing-input conditions to a tagged
// 404 for this request only; anything else is a server error.
func (s *Server) respondSoft(w http.ResponseWriter, err error) {
	if metrics.IsMissing(err) {
		s.respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":     err.Error(),
			"available": false,
		})
		return
	}
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

// workbook fetches the session workbook, answering 409 when nothing is
// loaded yet.
func (s *Server) workbook(w http.ResponseWriter) (*models.Workbook, bool) {
	wb := s.sess.Workbook()
	if wb == nil {
		s.respondError(w, http.StatusConflict, "no workbook loaded")
		return nil, false
	}
	return wb, true
}
