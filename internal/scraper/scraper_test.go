package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestScraper(maxChars int) *Scraper {
	return New(5*time.Second, maxChars, zap.NewNop())
}

const policyHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Terms</title>
  <style>body { color: red; }</style>
  <script>console.log("tracking");</script>
</head>
<body>
  <nav><a href="/">Home</a> <a href="/about">About</a></nav>
  <header>Site header</header>
  <main>
    <h1>Terms of Service</h1>
    <p>We may sell your personal information to advertising partners.</p>
    <p>You can delete your account at any time.</p>
  </main>
  <footer>Copyright 2026</footer>
</body>
</html>`

func TestExtractText_StripsBoilerplate(t *testing.T) {
	text := newTestScraper(0).ExtractText(policyHTML)

	assert.Contains(t, text, "Terms of Service")
	assert.Contains(t, text, "sell your personal information")
	assert.Contains(t, text, "delete your account")

	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Site header")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractText_CapsLength(t *testing.T) {
	long := "<p>" + strings.Repeat("policy text ", 1000) + "</p>"

	text := newTestScraper(100).ExtractText(long)

	assert.LessOrEqual(t, len(text), 100)
	assert.Contains(t, text, "policy text")
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	text := newTestScraper(0).ExtractText("<p>one</p>\n\n\n\n<p>two     words</p>")

	assert.NotContains(t, text, "\n\n\n")
	assert.NotContains(t, text, "  ")
}

func TestExtractText_EmptyInput(t *testing.T) {
	assert.Empty(t, newTestScraper(0).ExtractText(""))
}

func TestValidateURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	s := newTestScraper(0)
	ctx := context.Background()

	assert.True(t, s.ValidateURL(ctx, srv.URL+"/terms"))
	assert.False(t, s.ValidateURL(ctx, srv.URL+"/missing"))
	assert.False(t, s.ValidateURL(ctx, "http://127.0.0.1:1/nope"))
}

func TestValidateURL_RetriesHeadAsGet(t *testing.T) {
	var sawGet bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		sawGet = true
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	assert.True(t, newTestScraper(0).ValidateURL(context.Background(), srv.URL))
	assert.True(t, sawGet)
}

func TestFetchHTML_SendsBrowserHeaders(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<p>hello</p>"))
	}))
	defer srv.Close()

	body, err := newTestScraper(0).FetchHTML(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", body)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestFetchHTML_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestScraper(0).FetchHTML(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestScrapePolicies_LabelsSections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/terms":
			w.Write([]byte("<p>Terms body text goes here.</p>"))
		case "/privacy":
			w.Write([]byte("<p>Privacy body text goes here.</p>"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	doc := newTestScraper(0).ScrapePolicies(context.Background(), srv.URL+"/terms", srv.URL+"/privacy")

	assert.Contains(t, doc, "=== TERMS OF SERVICE ===")
	assert.Contains(t, doc, "Terms body text goes here.")
	assert.Contains(t, doc, "=== PRIVACY POLICY ===")
	assert.Contains(t, doc, "Privacy body text goes here.")
}

func TestScrapePolicies_PlaceholderForUnreachablePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/terms" {
			w.Write([]byte("<p>Terms body text goes here.</p>"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	doc := newTestScraper(0).ScrapePolicies(context.Background(), srv.URL+"/terms", srv.URL+"/privacy")

	assert.Contains(t, doc, "Terms body text goes here.")
	assert.Contains(t, doc, "[Could not access "+srv.URL+"/privacy]")
}

func TestScrapePolicies_EmptyWhenNothingScraped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	doc := newTestScraper(0).ScrapePolicies(context.Background(), srv.URL+"/terms", srv.URL+"/privacy")

	assert.Empty(t, doc)
}

func TestScrapePolicies_SkipsEmptyURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>Only the terms page exists.</p>"))
	}))
	defer srv.Close()

	doc := newTestScraper(0).ScrapePolicies(context.Background(), srv.URL, "")

	assert.Contains(t, doc, "=== TERMS OF SERVICE ===")
	assert.NotContains(t, doc, "PRIVACY POLICY")
}

func TestScrapePolicies_CapsCombinedLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>" + strings.Repeat("legal words ", 500) + "</p>"))
	}))
	defer srv.Close()

	doc := newTestScraper(200).ScrapePolicies(context.Background(), srv.URL+"/terms", srv.URL+"/privacy")

	assert.LessOrEqual(t, len(doc), 200)
}
