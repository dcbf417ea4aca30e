package analyzer

import "fmt"

// Result is the verdict for a single attribute on a single document.
type Result struct {
	ID       string   `json:"id"`
	Value    string   `json:"value"`
	Severity Severity `json:"severity"`
	Evidence string   `json:"evidence"`
}

// neutralValue is how an undetermined verdict renders for every attribute.
const neutralValue = "Not clearly addressed"

// Classify evaluates every attribute in the library against the document and
// returns one result per attribute, in display order. Every result carries
// non-empty evidence: a direct quote, a contextual mention, or the
// attribute's fallback explanation. Empty and near-empty documents are valid
// input and fall through to all-neutral verdicts.
func (l *Library) Classify(document string) []Result {
	results := make([]Result, 0, len(l.attrs))

	for i := range l.attrs {
		attr := &l.attrs[i]
		goodEvidence := findEvidence(document, attr.Good, primaryWindowChars)
		badEvidence := findEvidence(document, attr.Bad, primaryWindowChars)

		var r Result
		r.ID = attr.ID

		switch {
		case goodEvidence != "" && badEvidence != "" && attr.NegationDominant:
			// The favorable hit is an explicit negation of the unfavorable
			// language; cite it and note the unfavorable mention.
			r.Severity = SeverityGood
			r.Value = attr.GoodValue
			r.Evidence = fmt.Sprintf("Policy states: %s — However, it also mentions: %s", goodEvidence, badEvidence)
		case goodEvidence != "" && badEvidence != "":
			// Unfavorable language dominates by default.
			r.Severity = SeverityBad
			r.Value = attr.BadValue
			r.Evidence = "Policy states: " + badEvidence
		case goodEvidence != "":
			r.Severity = SeverityGood
			r.Value = attr.GoodValue
			r.Evidence = "Policy states: " + goodEvidence
		case badEvidence != "":
			r.Severity = SeverityBad
			r.Value = attr.BadValue
			r.Evidence = "Policy states: " + badEvidence
		default:
			r.Severity = SeverityNeutral
			r.Value = neutralValue
			r.Evidence = l.contextEvidence(document, attr)
		}

		results = append(results, r)
	}

	return results
}

// contextEvidence builds the explanation for a neutral verdict: a related
// mention from the wider contextual patterns when one exists, otherwise the
// attribute's own fallback sentence.
func (l *Library) contextEvidence(document string, attr *Attribute) string {
	if snippet := findEvidence(document, attr.Context, contextualWindowChars); snippet != "" {
		return "The policy mentions related topics but does not clearly address this: " + snippet
	}
	if attr.Fallback != "" {
		return attr.Fallback
	}
	return "This attribute was not explicitly addressed in the analyzed policy text."
}
