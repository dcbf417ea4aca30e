package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultByID(t *testing.T, results []Result, id string) Result {
	t.Helper()
	for _, r := range results {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("no result for attribute %q", id)
	return Result{}
}

func TestClassify_EmptyDocument(t *testing.T) {
	results := DefaultLibrary().Classify("")
	require.Len(t, results, 12)

	seen := make(map[string]bool)
	for _, r := range results {
		assert.Equal(t, SeverityNeutral, r.Severity, r.ID)
		assert.Equal(t, "Not clearly addressed", r.Value, r.ID)
		assert.NotEmpty(t, r.Evidence, r.ID)
		seen[r.Evidence] = true
	}

	// Each attribute explains its own absence.
	assert.Len(t, seen, 12)
}

func TestClassify_UnfavorableLanguage(t *testing.T) {
	doc := "We may sell your personal information to advertising partners."

	r := resultByID(t, DefaultLibrary().Classify(doc), "data_selling")

	assert.Equal(t, SeverityBad, r.Severity)
	assert.Equal(t, "Yes — may sell or share data with advertisers", r.Value)
	assert.Contains(t, r.Evidence, "sell your personal information to advertising partners")
	assert.True(t, strings.HasPrefix(r.Evidence, "Policy states: "), r.Evidence)
}

func TestClassify_NegationDominance(t *testing.T) {
	doc := "We do not sell your personal data. However, we may share information with advertising partners."

	r := resultByID(t, DefaultLibrary().Classify(doc), "data_selling")

	assert.Equal(t, SeverityGood, r.Severity)
	assert.Equal(t, "No — does not sell personal data", r.Value)
	assert.Contains(t, r.Evidence, "However, it also mentions:")
}

func TestClassify_UnfavorableWinsByDefault(t *testing.T) {
	doc := "We accept full liability for all damages. In no event shall the company be liable for indirect damages."

	r := resultByID(t, DefaultLibrary().Classify(doc), "liability_limitation")

	assert.Equal(t, SeverityBad, r.Severity)
	assert.Equal(t, "Liability is capped or broadly excluded", r.Value)
	assert.Contains(t, r.Evidence, "In no event")
	assert.NotContains(t, r.Evidence, "However")
}

func TestClassify_FavorableLanguage(t *testing.T) {
	doc := "Your data is encrypted in transit and at rest using TLS."

	r := resultByID(t, DefaultLibrary().Classify(doc), "encryption")

	assert.Equal(t, SeverityGood, r.Severity)
	assert.Equal(t, "Yes — data is encrypted", r.Value)
	assert.Contains(t, r.Evidence, "encrypted in transit")
}

func TestClassify_ContextualMention(t *testing.T) {
	doc := "Records retention schedule applies to corporate records."

	r := resultByID(t, DefaultLibrary().Classify(doc), "data_retention")

	assert.Equal(t, SeverityNeutral, r.Severity)
	assert.True(t, strings.HasPrefix(r.Evidence, "The policy mentions related topics"), r.Evidence)
}

func TestClassify_Idempotent(t *testing.T) {
	doc := "We may sell your personal information. You can delete your account at any time. " +
		"Disputes shall be resolved by arbitration."

	lib := DefaultLibrary()
	first := lib.Classify(doc)
	second := lib.Classify(doc)

	assert.Equal(t, first, second)
}

func TestClassify_DisplayOrder(t *testing.T) {
	results := DefaultLibrary().Classify("anything")
	require.Len(t, results, 12)

	for i, r := range results {
		assert.Equal(t, displayOrder[i], r.ID)
	}
}
