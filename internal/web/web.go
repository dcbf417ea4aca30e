// Package web renders a minimal history UI over the analysis store.
package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/analyzer"
	"github.com/policyscope/policyscope/internal/database"
)

// Web handles web UI requests.
type Web struct {
	db        *database.DB
	templates *template.Template
	log       *zap.Logger
}

// New creates a web handler from a template directory.
func New(db *database.DB, templatesDir string, log *zap.Logger) (*Web, error) {
	tmpl, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &Web{db: db, templates: tmpl, log: log}, nil
}

// Router creates the web router.
func (w *Web) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/", w.home)
	r.Get("/analysis/{id}", w.analysisDetail)

	return r
}

// home renders recent analyses and aggregate stats.
func (w *Web) home(wr http.ResponseWriter, r *http.Request) {
	stats, err := w.db.GetStats(r.Context())
	if err != nil {
		w.log.Error("load stats", zap.Error(err))
		http.Error(wr, "Internal error", http.StatusInternalServerError)
		return
	}

	recent, _, err := w.db.ListAnalyses(r.Context(), 25, 0)
	if err != nil {
		w.log.Error("load recent analyses", zap.Error(err))
		http.Error(wr, "Internal error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Stats":  stats,
		"Recent": recent,
	}

	if err := w.templates.ExecuteTemplate(wr, "index.html", data); err != nil {
		w.log.Error("render index", zap.Error(err))
	}
}

// analysisDetail renders a single analysis with its attribute breakdown.
func (w *Web) analysisDetail(wr http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(wr, "Invalid analysis ID", http.StatusBadRequest)
		return
	}

	analysis, err := w.db.GetAnalysis(r.Context(), id)
	if err != nil {
		http.Error(wr, "Analysis not found", http.StatusNotFound)
		return
	}

	var attributes []analyzer.ScoredAttribute
	if err := json.Unmarshal(analysis.Attributes, &attributes); err != nil {
		w.log.Error("unmarshal stored attributes", zap.String("id", id.String()), zap.Error(err))
	}

	data := map[string]interface{}{
		"Analysis":   analysis,
		"Attributes": attributes,
	}

	if err := w.templates.ExecuteTemplate(wr, "analysis.html", data); err != nil {
		w.log.Error("render analysis", zap.Error(err))
	}
}
