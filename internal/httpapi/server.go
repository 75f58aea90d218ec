// Package httpapi exposes the fact-check and comment operations over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/verilens/verilens/internal/model"
	"github.com/verilens/verilens/internal/store"
)

// Analyzer runs one fact-check analysis per call.
type Analyzer interface {
	Analyze(ctx context.Context, content string) (*model.FactCheckResponse, error)
}

// Options tunes router behavior.
type Options struct {
	CORSOrigins []string
	AnalyzeRPS  float64 // 0 disables rate limiting on /analyze
}

// Server holds the request handlers and their collaborators.
type Server struct {
	analyzer Analyzer
	store    store.Store
	limiter  *rate.Limiter
}

// NewRouter wires all routes and middleware.
func NewRouter(analyzer Analyzer, st store.Store, opts Options) chi.Router {
	s := &Server{
		analyzer: analyzer,
		store:    st,
	}
	if opts.AnalyzeRPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.AnalyzeRPS), int(opts.AnalyzeRPS)+1)
	}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/comments", s.handleCreateComment)
	r.Get("/comments/*", s.handleGetComments)

	return r
}

// requestLogger tags each request with an id and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		zap.L().Info("request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// recoverer converts any panic into a 500 response so a single request can
// never take down the process.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zap.L().Error("panic in handler",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
