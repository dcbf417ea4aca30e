// Package api exposes the analysis pipeline and history over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/database"
	"github.com/policyscope/policyscope/internal/pipeline"
)

// Queries longer than this are rejected before any work happens.
const maxQueryLength = 200

// Runner is the slice of the pipeline the API needs.
type Runner interface {
	Analyze(ctx context.Context, query string) (*pipeline.Report, error)
	Mode(ctx context.Context) string
}

// API handles HTTP API requests. db may be nil; history endpoints then
// answer 503.
type API struct {
	runner Runner
	db     *database.DB
	log    *zap.Logger
}

// New creates an API handler.
func New(runner Runner, db *database.DB, log *zap.Logger) *API {
	return &API{runner: runner, db: db, log: log}
}

// Router creates the API router.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Post("/analyze", a.analyze)
	r.Get("/health", a.health)
	r.Get("/analyses", a.listAnalyses)
	r.Get("/analyses/{id}", a.getAnalysis)
	r.Get("/analyses/domain/{domain}", a.listAnalysesForDomain)
	r.Get("/stats", a.getStats)

	return r
}

// Response wraps API responses.
type Response struct {
	Data  interface{} `json:"data,omitempty"`
	Meta  *Meta       `json:"meta,omitempty"`
	Error *ErrorMsg   `json:"error,omitempty"`
}

// Meta contains pagination metadata.
type Meta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// ErrorMsg represents an error response.
type ErrorMsg struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	Query string `json:"query"`
}

// analyze handles POST /analyze.
func (a *API) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a 'query' field")
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		respondError(w, http.StatusBadRequest, "empty_query", "Query must not be empty")
		return
	}
	if len(query) > maxQueryLength {
		respondError(w, http.StatusBadRequest, "query_too_long", "Query must be at most 200 characters")
		return
	}

	report, err := a.runner.Analyze(r.Context(), query)
	switch {
	case errors.Is(err, pipeline.ErrUnknownService):
		respondError(w, http.StatusUnprocessableEntity, "unknown_service",
			"Could not identify the service '"+query+"'. Try one of: Netflix, Spotify, Google, Amazon, Discord, TikTok, Instagram, Uber, etc.")
		return
	case errors.Is(err, pipeline.ErrScrapeFailed):
		respondError(w, http.StatusBadGateway, "scrape_failed",
			"Could not scrape policy pages for '"+query+"'. The site may be blocking automated access.")
		return
	case errors.Is(err, pipeline.ErrExtractFailed):
		respondError(w, http.StatusBadGateway, "extract_failed",
			"Failed to analyze the policy text. Please try again.")
		return
	case err != nil:
		a.log.Error("analyze failed", zap.String("query", query), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "Analysis failed unexpectedly")
		return
	}

	respondJSON(w, http.StatusOK, Response{Data: report})
}

// health handles GET /health.
func (a *API) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	mode := a.runner.Mode(ctx)
	ollama := "unavailable (using keyword heuristics)"
	if mode == pipeline.ModeLLM {
		ollama = "connected"
	}

	respondJSON(w, http.StatusOK, Response{Data: map[string]string{
		"status": "ok",
		"mode":   mode,
		"ollama": ollama,
	}})
}

// listAnalyses handles GET /analyses.
func (a *API) listAnalyses(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		respondError(w, http.StatusServiceUnavailable, "history_disabled", "Analysis history requires a configured database")
		return
	}

	page, perPage := parsePagination(r)

	analyses, total, err := a.db.ListAnalyses(r.Context(), perPage, (page-1)*perPage)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "database_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Data: analyses,
		Meta: &Meta{Total: total, Page: page, PerPage: perPage},
	})
}

// getAnalysis handles GET /analyses/{id}.
func (a *API) getAnalysis(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		respondError(w, http.StatusServiceUnavailable, "history_disabled", "Analysis history requires a configured database")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Invalid analysis ID")
		return
	}

	analysis, err := a.db.GetAnalysis(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "Analysis not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "database_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Data: analysis})
}

// listAnalysesForDomain handles GET /analyses/domain/{domain}.
func (a *API) listAnalysesForDomain(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		respondError(w, http.StatusServiceUnavailable, "history_disabled", "Analysis history requires a configured database")
		return
	}

	domain := chi.URLParam(r, "domain")
	page, perPage := parsePagination(r)

	analyses, total, err := a.db.ListAnalysesForDomain(r.Context(), domain, perPage, (page-1)*perPage)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "database_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Data: analyses,
		Meta: &Meta{Total: total, Page: page, PerPage: perPage},
	})
}

// getStats handles GET /stats.
func (a *API) getStats(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		respondError(w, http.StatusServiceUnavailable, "history_disabled", "Analysis history requires a configured database")
		return
	}

	stats, err := a.db.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "database_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, Response{Data: stats})
}

// parsePagination extracts pagination parameters from a request.
func parsePagination(r *http.Request) (page, perPage int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}

	return
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, Response{
		Error: &ErrorMsg{Code: code, Message: message},
	})
}

// corsMiddleware adds permissive CORS headers for browser frontends.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
