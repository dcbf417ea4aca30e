package analyzer

import (
	"math"
	"strings"
)

// ScoredAttribute is a classification result enriched for presentation with
// its label, weight, and the points it earned.
type ScoredAttribute struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Value        string   `json:"value"`
	Severity     Severity `json:"severity"`
	Evidence     string   `json:"evidence"`
	Weight       int      `json:"weight"`
	PointsEarned float64  `json:"points_earned"`
}

// gradeThresholds maps minimum scores to letter grades, scanned in
// descending order.
var gradeThresholds = []struct {
	Min   int
	Grade string
}{
	{80, "A"},
	{60, "B"},
	{40, "C"},
	{20, "D"},
	{0, "F"},
}

// severityMultiplier converts a severity into a score multiplier. Anything
// unrecognized, including a missing severity, scores as unfavorable: the
// aggregator fails closed rather than defaulting to neutral.
func severityMultiplier(severity Severity) float64 {
	switch Severity(strings.ToLower(string(severity))) {
	case SeverityGood:
		return 1.0
	case SeverityNeutral:
		return 0.5
	default:
		return 0.0
	}
}

// Score aggregates classification results into a clamped 0-100 trust score,
// a letter grade, and the enriched per-attribute breakdown. Results with ids
// outside the library contribute weight 0 under a generic label; duplicated
// results are scored each time they appear. Severity and evidence pass
// through unaltered.
func (l *Library) Score(results []Result) (int, string, []ScoredAttribute) {
	total := 0.0
	enriched := make([]ScoredAttribute, 0, len(results))

	for _, r := range results {
		weight := 0
		label := titleCase(r.ID)
		if attr, ok := l.byID[r.ID]; ok {
			weight = attr.Weight
			label = attr.Label
		}

		severity := r.Severity
		if severity == "" {
			severity = SeverityBad
		}
		value := r.Value
		if value == "" {
			value = "Unknown"
		}
		evidence := r.Evidence
		if evidence == "" {
			evidence = "No evidence found."
		}

		points := float64(weight) * severityMultiplier(severity)
		total += points

		enriched = append(enriched, ScoredAttribute{
			ID:           r.ID,
			Label:        label,
			Value:        value,
			Severity:     severity,
			Evidence:     evidence,
			Weight:       weight,
			PointsEarned: math.Round(points*10) / 10,
		})
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	grade := "F"
	for _, t := range gradeThresholds {
		if score >= t.Min {
			grade = t.Grade
			break
		}
	}

	return score, grade, enriched
}

// titleCase renders an unknown attribute id as a readable label.
func titleCase(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
