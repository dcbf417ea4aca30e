// Package pipeline runs the full analysis flow: resolve a service, scrape
// its policies, classify the text, score the verdicts, and fan the report
// out to the optional store and cache.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/analyzer"
	"github.com/policyscope/policyscope/internal/cache"
	"github.com/policyscope/policyscope/internal/database"
	"github.com/policyscope/policyscope/internal/directory"
	"github.com/policyscope/policyscope/internal/llm"
	"github.com/policyscope/policyscope/internal/metrics"
	"github.com/policyscope/policyscope/internal/scraper"
)

// Sentinel errors the transport layer maps to status codes.
var (
	ErrUnknownService = errors.New("could not identify service")
	ErrScrapeFailed   = errors.New("could not scrape policy pages")
	ErrExtractFailed  = errors.New("could not extract policy attributes")
)

// Scraped text below this many characters means the pages were blocked or
// empty rather than analyzed.
const minDocumentChars = 50

// Extraction modes.
const (
	ModeLLM       = "llm"
	ModeHeuristic = "heuristic"
)

// Report is the complete result of one analysis run.
type Report struct {
	ID          uuid.UUID                  `json:"id"`
	ServiceName string                     `json:"service_name"`
	Domain      string                     `json:"domain"`
	TermsURL    string                     `json:"terms_url"`
	PrivacyURL  string                     `json:"privacy_url"`
	TrustScore  int                        `json:"trust_score"`
	Grade       string                     `json:"grade"`
	Mode        string                     `json:"mode"`
	AnalyzedAt  time.Time                  `json:"analyzed_at"`
	Attributes  []analyzer.ScoredAttribute `json:"attributes"`
}

// Pipeline wires the analysis collaborators together. The library, scraper,
// metrics, and logger are required; the LLM client, store, and cache are
// optional and may be nil.
type Pipeline struct {
	lib     *analyzer.Library
	scraper *scraper.Scraper
	llm     *llm.Client
	db      *database.DB
	cache   *cache.Cache
	metrics *metrics.Metrics
	log     *zap.Logger
}

// New creates a pipeline.
func New(lib *analyzer.Library, scr *scraper.Scraper, llmClient *llm.Client, db *database.DB, reportCache *cache.Cache, m *metrics.Metrics, log *zap.Logger) *Pipeline {
	return &Pipeline{
		lib:     lib,
		scraper: scr,
		llm:     llmClient,
		db:      db,
		cache:   reportCache,
		metrics: m,
		log:     log,
	}
}

// Mode reports which extraction path the next analysis would take.
func (p *Pipeline) Mode(ctx context.Context) string {
	if p.llm != nil && p.llm.Available(ctx) {
		return ModeLLM
	}
	return ModeHeuristic
}

// Analyze runs the full pipeline for a free-form service query.
func (p *Pipeline) Analyze(ctx context.Context, query string) (*Report, error) {
	start := time.Now()
	mode := p.Mode(ctx)
	p.log.Info("analyzing", zap.String("query", query), zap.String("mode", mode))

	report, err := p.analyze(ctx, query, mode)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.metrics.AnalysesTotal.WithLabelValues(mode, outcome).Inc()
	p.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	return report, err
}

func (p *Pipeline) analyze(ctx context.Context, query, mode string) (*Report, error) {
	// Resolve the service: the curated catalog first, the model second.
	svc := directory.Lookup(query)
	if svc == nil && mode == ModeLLM {
		resolved, err := p.llm.ResolveService(ctx, query)
		if err != nil {
			p.log.Warn("llm resolution failed", zap.String("query", query), zap.Error(err))
		} else {
			svc = resolved
			p.log.Info("llm resolved service", zap.String("query", query), zap.String("domain", svc.Domain))
		}
	}
	if svc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, query)
	}

	if cached := p.cachedReport(ctx, svc.Domain); cached != nil {
		return cached, nil
	}

	document := p.scraper.ScrapePolicies(ctx, svc.TermsURL, svc.PrivacyURL)
	p.metrics.DocumentChars.Observe(float64(len(document)))
	if len(strings.TrimSpace(document)) < minDocumentChars {
		return nil, fmt.Errorf("%w: %s", ErrScrapeFailed, svc.Name)
	}
	p.log.Info("scraped policies", zap.String("domain", svc.Domain), zap.Int("chars", len(document)))

	var results []analyzer.Result
	if mode == ModeLLM {
		var err error
		results, err = p.llm.ExtractAttributes(ctx, document, p.lib)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractFailed, err)
		}
	} else {
		results = p.lib.Classify(document)
	}

	score, grade, attributes := p.lib.Score(results)
	p.log.Info("scored", zap.String("domain", svc.Domain), zap.Int("score", score), zap.String("grade", grade))

	report := &Report{
		ID:          uuid.New(),
		ServiceName: svc.Name,
		Domain:      svc.Domain,
		TermsURL:    svc.TermsURL,
		PrivacyURL:  svc.PrivacyURL,
		TrustScore:  score,
		Grade:       grade,
		Mode:        mode,
		AnalyzedAt:  time.Now().UTC(),
		Attributes:  attributes,
	}

	p.persist(ctx, report)
	p.cacheReport(ctx, report)

	return report, nil
}

// cachedReport returns a previously cached report for the domain if one
// exists and still parses.
func (p *Pipeline) cachedReport(ctx context.Context, domain string) *Report {
	if p.cache == nil {
		return nil
	}
	data := p.cache.Get(ctx, domain)
	if data == nil {
		return nil
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		p.log.Warn("discarding unparseable cached report", zap.String("domain", domain), zap.Error(err))
		return nil
	}

	p.metrics.CacheHitsTotal.Inc()
	p.log.Info("served from cache", zap.String("domain", domain))
	return &report
}

func (p *Pipeline) cacheReport(ctx context.Context, report *Report) {
	if p.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		p.log.Warn("marshal report for cache", zap.Error(err))
		return
	}
	p.cache.Set(ctx, report.Domain, data)
}

// persist stores the report in history. Storage is auxiliary: a failed
// insert is logged, not returned.
func (p *Pipeline) persist(ctx context.Context, report *Report) {
	if p.db == nil {
		return
	}

	attributes, err := json.Marshal(report.Attributes)
	if err != nil {
		p.log.Error("marshal attributes for storage", zap.Error(err))
		return
	}

	record := &database.Analysis{
		ID:          report.ID,
		ServiceName: report.ServiceName,
		Domain:      report.Domain,
		TermsURL:    report.TermsURL,
		PrivacyURL:  report.PrivacyURL,
		TrustScore:  report.TrustScore,
		Grade:       report.Grade,
		Mode:        report.Mode,
		Attributes:  attributes,
		AnalyzedAt:  report.AnalyzedAt,
	}

	if err := p.db.InsertAnalysis(ctx, record); err != nil {
		p.log.Error("store analysis", zap.String("domain", report.Domain), zap.Error(err))
	}
}
