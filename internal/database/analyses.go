package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Analysis is one stored analysis run.
type Analysis struct {
	ID          uuid.UUID       `json:"id"`
	ServiceName string          `json:"service_name"`
	Domain      string          `json:"domain"`
	TermsURL    string          `json:"terms_url"`
	PrivacyURL  string          `json:"privacy_url"`
	TrustScore  int             `json:"trust_score"`
	Grade       string          `json:"grade"`
	Mode        string          `json:"mode"`
	Attributes  json.RawMessage `json:"attributes"`
	AnalyzedAt  time.Time       `json:"analyzed_at"`
}

// ErrNotFound is returned when an analysis id has no record.
var ErrNotFound = errors.New("analysis not found")

const analysisColumns = `id, service_name, domain, terms_url, privacy_url,
	trust_score, grade, mode, attributes, analyzed_at`

// InsertAnalysis stores an analysis record.
func (db *DB) InsertAnalysis(ctx context.Context, a *Analysis) error {
	query := `
		INSERT INTO analyses (
			id, service_name, domain, terms_url, privacy_url,
			trust_score, grade, mode, attributes, analyzed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := db.pool.Exec(ctx, query,
		a.ID, a.ServiceName, a.Domain, a.TermsURL, a.PrivacyURL,
		a.TrustScore, a.Grade, a.Mode, a.Attributes, a.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	a := &Analysis{}
	err := row.Scan(
		&a.ID, &a.ServiceName, &a.Domain, &a.TermsURL, &a.PrivacyURL,
		&a.TrustScore, &a.Grade, &a.Mode, &a.Attributes, &a.AnalyzedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetAnalysis retrieves an analysis by id.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = $1`

	a, err := scanAnalysis(db.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses retrieves analyses newest-first with the total count.
func (db *DB) ListAnalyses(ctx context.Context, limit, offset int) ([]*Analysis, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM analyses").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count analyses: %w", err)
	}

	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		ORDER BY analyzed_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := db.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	analyses := make([]*Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate analyses: %w", err)
	}

	return analyses, total, nil
}

// ListAnalysesForDomain retrieves a domain's analyses newest-first.
func (db *DB) ListAnalysesForDomain(ctx context.Context, domain string, limit, offset int) ([]*Analysis, int, error) {
	var total int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM analyses WHERE domain = $1", domain).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count analyses: %w", err)
	}

	query := `
		SELECT ` + analysisColumns + `
		FROM analyses
		WHERE domain = $1
		ORDER BY analyzed_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := db.pool.Query(ctx, query, domain, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query analyses for domain: %w", err)
	}
	defer rows.Close()

	analyses := make([]*Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate analyses: %w", err)
	}

	return analyses, total, nil
}

// Stats summarizes stored analyses.
type Stats struct {
	TotalAnalyses int            `json:"total_analyses"`
	UniqueDomains int            `json:"unique_domains"`
	AverageScore  float64        `json:"average_score"`
	GradeCounts   map[string]int `json:"grade_counts"`
	LastAnalyzed  *time.Time     `json:"last_analyzed,omitempty"`
}

// GetStats computes aggregate statistics over the history.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{GradeCounts: make(map[string]int)}

	query := `
		SELECT COUNT(*), COUNT(DISTINCT domain),
			   COALESCE(AVG(trust_score), 0), MAX(analyzed_at)
		FROM analyses
	`
	err := db.pool.QueryRow(ctx, query).Scan(
		&stats.TotalAnalyses, &stats.UniqueDomains,
		&stats.AverageScore, &stats.LastAnalyzed,
	)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	rows, err := db.pool.Query(ctx, "SELECT grade, COUNT(*) FROM analyses GROUP BY grade")
	if err != nil {
		return nil, fmt.Errorf("query grade counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var grade string
		var count int
		if err := rows.Scan(&grade, &count); err != nil {
			return nil, fmt.Errorf("scan grade count: %w", err)
		}
		stats.GradeCounts[grade] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grade counts: %w", err)
	}

	return stats, nil
}
