package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/policyscope/policyscope/internal/analyzer"
)

var (
	fenceOpen     = regexp.MustCompile("```(?:json)?\\s*")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// repairJSON salvages JSON from typical small-model output: markdown fences,
// leading/trailing prose, and trailing commas. It returns its best candidate
// substring; the caller still has to parse it.
func repairJSON(raw string) string {
	raw = fenceOpen.ReplaceAllString(raw, "")
	raw = strings.TrimSpace(raw)

	startObj := strings.Index(raw, "{")
	startArr := strings.Index(raw, "[")
	if startObj == -1 && startArr == -1 {
		return raw
	}

	var start, end int
	if startArr == -1 || (startObj != -1 && startObj < startArr) {
		start = startObj
		end = strings.LastIndex(raw, "}") + 1
	} else {
		start = startArr
		end = strings.LastIndex(raw, "]") + 1
	}

	if end <= start {
		return raw
	}

	return trailingComma.ReplaceAllString(raw[start:end], "$1")
}

// parseAttributeArray parses model output into attribute results. Models
// sometimes wrap the array in an object; the first array-valued field is
// unwrapped in that case.
func parseAttributeArray(raw string) ([]analyzer.Result, error) {
	candidate := repairJSON(raw)

	var results []analyzer.Result
	if err := json.Unmarshal([]byte(candidate), &results); err == nil {
		return results, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &wrapped); err == nil {
		for _, v := range wrapped {
			if err := json.Unmarshal(v, &results); err == nil {
				return results, nil
			}
		}
		// An object with no array inside may itself be a single attribute.
		var single analyzer.Result
		if err := json.Unmarshal([]byte(candidate), &single); err == nil && single.ID != "" {
			return []analyzer.Result{single}, nil
		}
	}

	preview := candidate
	if len(preview) > 200 {
		preview = preview[:200]
	}
	return nil, fmt.Errorf("model output is not a JSON attribute array: %s", preview)
}
