package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformResults(lib *Library, severity Severity) []Result {
	results := make([]Result, 0, lib.Len())
	for _, attr := range lib.Attributes() {
		results = append(results, Result{
			ID:       attr.ID,
			Value:    "test",
			Severity: severity,
			Evidence: "test evidence for " + attr.ID,
		})
	}
	return results
}

func TestScore_AllFavorable(t *testing.T) {
	score, grade, attrs := DefaultLibrary().Score(uniformResults(DefaultLibrary(), SeverityGood))

	assert.Equal(t, 100, score)
	assert.Equal(t, "A", grade)
	require.Len(t, attrs, 12)
	for _, a := range attrs {
		assert.Equal(t, float64(a.Weight), a.PointsEarned, a.ID)
	}
}

func TestScore_AllUnfavorable(t *testing.T) {
	score, grade, attrs := DefaultLibrary().Score(uniformResults(DefaultLibrary(), SeverityBad))

	assert.Equal(t, 0, score)
	assert.Equal(t, "F", grade)
	for _, a := range attrs {
		assert.Zero(t, a.PointsEarned, a.ID)
	}
}

func TestScore_AllNeutral(t *testing.T) {
	score, grade, attrs := DefaultLibrary().Score(uniformResults(DefaultLibrary(), SeverityNeutral))

	assert.Equal(t, 50, score)
	assert.Equal(t, "C", grade)

	// Half the attribute's weight, rounded to one decimal for display.
	selling := attrs[0]
	assert.Equal(t, "data_selling", selling.ID)
	assert.Equal(t, 7.5, selling.PointsEarned)
}

func TestScore_MonotonicInSeverity(t *testing.T) {
	lib := DefaultLibrary()

	for _, attr := range lib.Attributes() {
		var scores []int
		for _, sev := range []Severity{SeverityBad, SeverityNeutral, SeverityGood} {
			results := uniformResults(lib, SeverityNeutral)
			for i := range results {
				if results[i].ID == attr.ID {
					results[i].Severity = sev
				}
			}
			score, _, _ := lib.Score(results)
			scores = append(scores, score)
		}
		assert.LessOrEqual(t, scores[0], scores[1], attr.ID)
		assert.LessOrEqual(t, scores[1], scores[2], attr.ID)
	}
}

func TestScore_FailsClosedOnUnknownSeverity(t *testing.T) {
	lib := DefaultLibrary()
	results := uniformResults(lib, Severity("mystery"))

	score, grade, attrs := lib.Score(results)

	assert.Equal(t, 0, score)
	assert.Equal(t, "F", grade)
	for _, a := range attrs {
		assert.Zero(t, a.PointsEarned)
	}
}

func TestScore_SeverityCaseInsensitive(t *testing.T) {
	score, _, _ := DefaultLibrary().Score(uniformResults(DefaultLibrary(), Severity("GOOD")))

	assert.Equal(t, 100, score)
}

func TestScore_MissingSeverityTreatedAsUnfavorable(t *testing.T) {
	lib := DefaultLibrary()
	results := uniformResults(lib, "")

	score, _, attrs := lib.Score(results)

	assert.Equal(t, 0, score)
	for _, a := range attrs {
		assert.Equal(t, SeverityBad, a.Severity)
	}
}

func TestScore_UnknownAttributeID(t *testing.T) {
	lib := DefaultLibrary()
	results := append(uniformResults(lib, SeverityGood), Result{
		ID:       "mystery_attribute",
		Severity: SeverityGood,
	})

	score, grade, attrs := lib.Score(results)

	assert.Equal(t, 100, score)
	assert.Equal(t, "A", grade)

	extra := attrs[len(attrs)-1]
	assert.Equal(t, "Mystery Attribute", extra.Label)
	assert.Zero(t, extra.Weight)
	assert.Zero(t, extra.PointsEarned)
}

func TestScore_FillsPresentationDefaults(t *testing.T) {
	lib := DefaultLibrary()
	_, _, attrs := lib.Score([]Result{{ID: "encryption", Severity: SeverityGood}})

	require.Len(t, attrs, 1)
	assert.Equal(t, "Unknown", attrs[0].Value)
	assert.Equal(t, "No evidence found.", attrs[0].Evidence)
	assert.Equal(t, "Data Encryption", attrs[0].Label)
}

func TestScore_ClampsAt100(t *testing.T) {
	lib := DefaultLibrary()
	results := append(uniformResults(lib, SeverityGood), uniformResults(lib, SeverityGood)...)

	score, grade, _ := lib.Score(results)

	assert.Equal(t, 100, score)
	assert.Equal(t, "A", grade)
}

func TestScore_EmptyResults(t *testing.T) {
	score, grade, attrs := DefaultLibrary().Score(nil)

	assert.Equal(t, 0, score)
	assert.Equal(t, "F", grade)
	assert.Empty(t, attrs)
}

func TestScore_GradeBoundaries(t *testing.T) {
	lib, err := NewLibrary([]Attribute{
		{ID: "major", Weight: 79},
		{ID: "minor", Weight: 21},
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		major Severity
		minor Severity
		score int
		grade string
	}{
		{"just below A", SeverityGood, SeverityBad, 79, "B"},
		{"exactly A", SeverityGood, SeverityNeutral, 90, "A"},
		{"exactly D", SeverityBad, SeverityGood, 21, "D"},
		{"exactly F", SeverityBad, SeverityNeutral, 11, "F"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, grade, _ := lib.Score([]Result{
				{ID: "major", Severity: tc.major},
				{ID: "minor", Severity: tc.minor},
			})
			assert.Equal(t, tc.score, score)
			assert.Equal(t, tc.grade, grade)
		})
	}
}

func TestSeverityMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, severityMultiplier(SeverityGood))
	assert.Equal(t, 0.5, severityMultiplier(SeverityNeutral))
	assert.Equal(t, 0.0, severityMultiplier(SeverityBad))
	assert.Equal(t, 0.0, severityMultiplier("anything else"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Data Selling", titleCase("data_selling"))
	assert.Equal(t, "Single", titleCase("single"))
	assert.Equal(t, "", titleCase(""))
}
