// Package scraper fetches legal pages and reduces them to plain text. It
// owns the acquisition side of the pipeline: HTTP fetching, boilerplate
// stripping, and the document length cap that bounds classification cost.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// DefaultMaxTextChars caps extracted text at roughly 12k tokens.
const DefaultMaxTextChars = 48000

// Browser-like headers; many legal pages refuse obvious bots.
var requestHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
}

// Tags whose entire subtree is boilerplate, never quotable policy text.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"iframe":   true,
	"svg":      true,
}

var (
	blankLines = regexp.MustCompile(`\n{3,}`)
	spaceRuns  = regexp.MustCompile(` {2,}`)
)

// Scraper fetches and extracts policy page text.
type Scraper struct {
	client   *http.Client
	maxChars int
	log      *zap.Logger
}

// New creates a scraper. maxChars <= 0 falls back to DefaultMaxTextChars.
func New(timeout time.Duration, maxChars int, log *zap.Logger) *Scraper {
	if maxChars <= 0 {
		maxChars = DefaultMaxTextChars
	}
	return &Scraper{
		client:   &http.Client{Timeout: timeout},
		maxChars: maxChars,
		log:      log,
	}
}

// ValidateURL checks reachability with a HEAD request, retrying as GET when
// the site rejects HEAD outright.
func (s *Scraper) ValidateURL(ctx context.Context, url string) bool {
	resp, err := s.do(ctx, http.MethodHead, url)
	if err == nil && resp.StatusCode == http.StatusMethodNotAllowed {
		resp.Body.Close()
		resp, err = s.do(ctx, http.MethodGet, url)
	}
	if err != nil {
		s.log.Warn("url validation failed", zap.String("url", url), zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode < 400
}

// FetchHTML downloads the raw HTML for a URL.
func (s *Scraper) FetchHTML(ctx context.Context, url string) (string, error) {
	resp, err := s.do(ctx, http.MethodGet, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

func (s *Scraper) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range requestHeaders {
		req.Header.Set(k, v)
	}
	return s.client.Do(req)
}

// ExtractText strips an HTML document down to its visible text, dropping
// boilerplate subtrees and collapsing whitespace. The result is capped at
// maxChars.
func (s *Scraper) ExtractText(rawHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))

	var b strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skipTags[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skipTags[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
	}

	text := b.String()
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}
	return text
}

// ScrapePage fetches a URL and extracts its text. Returns "" on any failure;
// the caller decides whether the combined document is usable.
func (s *Scraper) ScrapePage(ctx context.Context, url string) string {
	rawHTML, err := s.FetchHTML(ctx, url)
	if err != nil {
		s.log.Error("scrape failed", zap.String("url", url), zap.Error(err))
		return ""
	}
	text := s.ExtractText(rawHTML)
	s.log.Info("scraped page", zap.String("url", url), zap.Int("chars", len(text)))
	return text
}

// ScrapePolicies fetches the terms and privacy pages and concatenates them
// into one labeled document, with placeholders for pages that could not be
// reached. Returns "" when no page yields real text, so placeholder-only
// output never masquerades as a scraped document. The combined document is
// capped at maxChars.
func (s *Scraper) ScrapePolicies(ctx context.Context, termsURL, privacyURL string) string {
	sections := make([]string, 0, 2)
	scraped := 0

	pages := []struct {
		label string
		url   string
	}{
		{"TERMS OF SERVICE", termsURL},
		{"PRIVACY POLICY", privacyURL},
	}

	for _, page := range pages {
		if page.url == "" {
			continue
		}

		if !s.ValidateURL(ctx, page.url) {
			s.log.Warn("url unreachable, skipping", zap.String("url", page.url))
			sections = append(sections, fmt.Sprintf("=== %s ===\n[Could not access %s]\n", page.label, page.url))
			continue
		}

		if text := s.ScrapePage(ctx, page.url); text != "" {
			sections = append(sections, fmt.Sprintf("=== %s ===\n%s\n", page.label, text))
			scraped++
		} else {
			sections = append(sections, fmt.Sprintf("=== %s ===\n[Failed to extract text from %s]\n", page.label, page.url))
		}
	}

	if scraped == 0 {
		return ""
	}

	combined := strings.Join(sections, "\n\n")
	if len(combined) > s.maxChars {
		combined = combined[:s.maxChars]
	}
	return combined
}
