package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/verilens/verilens/internal/domainkey"
	"github.com/verilens/verilens/internal/factcheck"
	"github.com/verilens/verilens/internal/model"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to AI Fact Checker API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	resp, err := s.analyzer.Analyze(r.Context(), req.Content)
	if err != nil {
		status, detail := analysisError(err)
		zap.L().Error("analysis failed",
			zap.Int("status", status),
			zap.Error(err),
		)
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req model.CommentCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	domain := domainkey.Normalize(req.URL)
	if domain == "" {
		writeError(w, http.StatusUnprocessableEntity, "url could not be normalized to a domain")
		return
	}

	created, err := s.store.CreateComment(r.Context(), model.Comment{
		Domain:        domain,
		CommenterName: req.CommenterName,
		Comment:       req.Comment,
		Rating:        model.SnapRating(req.Rating),
	})
	if err != nil {
		zap.L().Error("create comment failed", zap.String("domain", domain), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "error creating comment: "+err.Error())
		return
	}

	// Echo the original URL back; only the normalized domain is stored.
	created.URL = req.URL
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleGetComments(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "*")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}

	domain := domainkey.Normalize(decoded)

	comments, err := s.store.ListComments(r.Context(), domain)
	if err != nil {
		zap.L().Error("list comments failed", zap.String("domain", domain), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "error getting comments: "+err.Error())
		return
	}

	// Echo the decoded URL, not the raw path segment, so a percent-encoded
	// lookup returns the same url field as the plain form.
	ratings := make([]float64, 0, len(comments))
	for i := range comments {
		comments[i].URL = decoded
		ratings = append(ratings, comments[i].Rating)
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	writeJSON(w, http.StatusOK, model.CommentsPage{
		Comments:      comments,
		AverageRating: model.AverageRating(ratings),
	})
}

// analysisError maps pipeline error kinds to an HTTP status and detail
// string. Validation problems are the caller's fault; everything else is a
// server-side processing failure.
func analysisError(err error) (int, string) {
	switch {
	case errors.Is(err, factcheck.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, factcheck.ErrNoJSONFound):
		return http.StatusInternalServerError, "no JSON found in the AI response"
	case errors.Is(err, factcheck.ErrSchemaInvalid):
		return http.StatusInternalServerError, "failed to parse the AI response: " + err.Error()
	case errors.Is(err, factcheck.ErrUpstream):
		return http.StatusInternalServerError, "error in analysis execution: " + err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
