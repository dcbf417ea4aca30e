package analyzer

import (
	"regexp"
	"strings"
)

const (
	// Context window widths, in characters, centered on a pattern match.
	// Contextual lookups get a wider window because the snippet has to stand
	// alone as the entire explanation.
	primaryWindowChars    = 200
	contextualWindowChars = 250

	// Sentence snapping thresholds. A ". " break inside the first third of
	// the window snaps the quote start; a period past this fraction of the
	// snippet snaps the quote end. Tuned empirically against real policies.
	sentenceStartWindowDivisor = 3
	sentenceEndFraction        = 0.6

	// Snippets longer than this are treated as meaningful quotes and wrapped
	// in quotation marks.
	minQuotedLength = 20
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// findEvidence scans the ordered pattern list and returns a cleaned,
// sentence-snapped quote around the first match, or "" when no pattern
// matches. Scanning stops at the first matching pattern either way: a match
// whose window cleans down to nothing still ends the search.
func findEvidence(document string, patterns []*regexp.Regexp, window int) string {
	for _, re := range patterns {
		loc := re.FindStringIndex(document)
		if loc == nil {
			continue
		}

		start := loc[0] - window/2
		if start < 0 {
			start = 0
		}
		end := loc[1] + window/2
		if end > len(document) {
			end = len(document)
		}

		snippet := document[start:end]

		// Snap to a sentence start when a break falls early in the window.
		if i := strings.Index(snippet, ". "); i != -1 && i < window/sentenceStartWindowDivisor {
			snippet = snippet[i+2:]
		}

		// Snap to a sentence end when a period falls late in the window.
		if i := strings.LastIndex(snippet, "."); i != -1 && float64(i) > float64(len(snippet))*sentenceEndFraction {
			snippet = snippet[:i+1]
		}

		snippet = strings.TrimSpace(whitespaceRun.ReplaceAllString(snippet, " "))

		if len(snippet) > minQuotedLength {
			return `"` + snippet + `"`
		}
		return snippet
	}
	return ""
}
