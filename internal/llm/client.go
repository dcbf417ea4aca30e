// Package llm is an optional client for a local Ollama inference service.
// When the service is reachable it replaces the keyword heuristics for
// service resolution and attribute extraction; when it is not, the pipeline
// falls back to the deterministic core and nothing breaks.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/analyzer"
	"github.com/policyscope/policyscope/internal/directory"
)

const (
	// Extraction input cap mirrors the scraper's document cap.
	maxPromptChars = 48000

	// Attempts per call: the small local models this targets fail to emit
	// valid JSON often enough that one retry pays for itself.
	defaultAttempts = 3
)

// Client talks to an Ollama server over its plain HTTP API.
type Client struct {
	host   string
	model  string
	client *http.Client
	log    *zap.Logger
}

// New creates a client for the given Ollama host (e.g.
// http://localhost:11434) and model name.
func New(host, model string, log *zap.Logger) *Client {
	return &Client{
		host:  host,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		log: log,
	}
}

// Available reports whether the Ollama server answers at all.
func (c *Client) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// chat sends a single-turn prompt and returns the raw model output.
func (c *Client) chat(ctx context.Context, prompt string, numPredict int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options:  chatOptions{Temperature: 0.1, NumPredict: numPredict},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama chat: status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return parsed.Message.Content, nil
}

const resolvePromptFormat = `Given the user query %q, identify the online service they mean and find the official Terms of Service and Privacy Policy URLs.

Return ONLY valid JSON with no additional text:
{
  "service_name": "Official Service Name",
  "domain": "example.com",
  "terms_url": "https://example.com/terms",
  "privacy_url": "https://example.com/privacy"
}

Rules:
- Use the most well-known official domain
- URLs must be full https:// URLs to the actual legal pages
- If you're unsure of exact URLs, use your best knowledge of where major services host their legal pages
- Do NOT wrap in markdown, do NOT add explanations`

// ResolveService asks the model to map a free-form query to a service and
// its policy URLs.
func (c *Client) ResolveService(ctx context.Context, query string) (*directory.Service, error) {
	prompt := fmt.Sprintf(resolvePromptFormat, query)

	var lastErr error
	for attempt := 1; attempt <= defaultAttempts; attempt++ {
		content, err := c.chat(ctx, prompt, 300)
		if err != nil {
			lastErr = err
			c.log.Warn("resolve attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		var svc directory.Service
		if err := json.Unmarshal([]byte(repairJSON(content)), &svc); err != nil {
			lastErr = fmt.Errorf("parse resolve output: %w", err)
			c.log.Warn("resolve attempt failed", zap.Int("attempt", attempt), zap.Error(lastErr))
			continue
		}

		if svc.Name == "" || svc.Domain == "" || svc.TermsURL == "" || svc.PrivacyURL == "" {
			lastErr = fmt.Errorf("resolve output missing fields")
			c.log.Warn("resolve attempt failed", zap.Int("attempt", attempt), zap.Error(lastErr))
			continue
		}

		return &svc, nil
	}

	return nil, fmt.Errorf("resolve service after %d attempts: %w", defaultAttempts, lastErr)
}

const extractPromptFormat = `Analyze the following Terms of Service / Privacy Policy text.

For each attribute below, return a JSON array of objects. Each object must have:
- "id": the attribute ID exactly as listed
- "value": factual answer (e.g. "Yes", "No", "30 days", etc.)
- "severity": exactly one of "good", "neutral", or "bad"
- "evidence": a single sentence quoted or paraphrased from the text

Severity guide:
- "good" = user-friendly (e.g. no data selling, easy deletion, encryption present)
- "bad" = user-hostile (e.g. sells data, mandatory arbitration, no deletion)
- "neutral" = ambiguous or standard industry practice

Attributes to extract:
1. data_selling — Does the service sell user data to third parties?
2. data_sharing — Does it share data with affiliates/partners beyond what's needed?
3. account_deletion — Can users fully delete their account and data?
4. encryption — Is user data encrypted at rest and in transit?
5. data_retention — How long is data kept after account deletion?
6. third_party_tracking — Are third-party trackers/analytics/ad cookies used?
7. government_requests — Does the company comply with government data requests without notifying users?
8. arbitration_clause — Is there a mandatory arbitration clause?
9. class_action_waiver — Does the user waive class-action lawsuit rights?
10. unilateral_changes — Can the company change terms without prior notice?
11. liability_limitation — Is the company's liability capped or broadly excluded?
12. content_license — Does the company claim a broad license to user-generated content?

Return ONLY a valid JSON array, no explanations, no markdown fences.

TEXT:
%s`

// ExtractAttributes asks the model to classify the document against the
// library's attribute set. Attributes the model skips are backfilled as
// neutral; ids outside the library are dropped.
func (c *Client) ExtractAttributes(ctx context.Context, text string, lib *analyzer.Library) ([]analyzer.Result, error) {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars] + "\n\n[TEXT TRUNCATED]"
	}
	prompt := fmt.Sprintf(extractPromptFormat, text)

	var lastErr error
	for attempt := 1; attempt <= defaultAttempts; attempt++ {
		content, err := c.chat(ctx, prompt, 2000)
		if err != nil {
			lastErr = err
			c.log.Warn("extract attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		results, err := parseAttributeArray(content)
		if err != nil {
			lastErr = err
			c.log.Warn("extract attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		return normalizeResults(results, lib), nil
	}

	return nil, fmt.Errorf("extract attributes after %d attempts: %w", defaultAttempts, lastErr)
}

// normalizeResults backfills attributes the model skipped as neutral and
// filters out ids the library does not know.
func normalizeResults(results []analyzer.Result, lib *analyzer.Library) []analyzer.Result {
	found := make(map[string]bool, len(results))
	for _, r := range results {
		found[r.ID] = true
	}

	for _, attr := range lib.Attributes() {
		if !found[attr.ID] {
			results = append(results, analyzer.Result{
				ID:       attr.ID,
				Value:    "Not mentioned in policy",
				Severity: analyzer.SeverityNeutral,
				Evidence: "This attribute was not explicitly addressed in the analyzed text.",
			})
		}
	}

	filtered := results[:0]
	for _, r := range results {
		if _, ok := lib.Lookup(r.ID); ok {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
