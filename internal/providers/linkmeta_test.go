package providers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!doctype html>
<html>
<head>
	<title>Fallback Title - Foo Cafe</title>
	<meta property="og:title" content="Foo Cafe">
	<meta property="og:description" content="Neighborhood espresso bar">
	<meta property="og:image" content="https://example.com/cover.jpg">
	<meta property="og:site_name" content="Foo Cafe">
	<meta name="keywords" content="coffee, espresso , ,wifi">
	<meta property="article:tag" content="third wave">
	<meta name="description" content="ignored, og wins">
</head>
<body>
	<script>var tracking = true;</script>
	<style>.x{color:red}</style>
	<h1>Foo Cafe</h1>
	<p>Small batch roasts,   rotating weekly.</p>
</body>
</html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractLinkResult(t *testing.T) {
	res := extractLinkResult(parseDoc(t, samplePage))
	require.NotNil(t, res)

	assert.Equal(t, "Foo Cafe", res.Title, "og:title wins over <title>")
	assert.Equal(t, "Neighborhood espresso bar", res.Description)
	assert.Equal(t, "https://example.com/cover.jpg", res.ImageURL)
	assert.Equal(t, "Foo Cafe", res.Web.SiteName)
	assert.Equal(t, []string{"coffee", "espresso", "wifi", "third wave"}, res.Tags)

	assert.Contains(t, res.Web.ExtractedText, "Small batch roasts, rotating weekly.")
	assert.NotContains(t, res.Web.ExtractedText, "tracking", "scripts are stripped")
	assert.NotContains(t, res.Web.ExtractedText, "color:red", "styles are stripped")
}

func TestExtractLinkResult_Fallbacks(t *testing.T) {
	html := `<html><head>
		<title>  Plain Title  </title>
		<meta name="description" content="plain description">
	</head><body><p>text</p></body></html>`
	res := extractLinkResult(parseDoc(t, html))
	require.NotNil(t, res)
	assert.Equal(t, "Plain Title", res.Title)
	assert.Equal(t, "plain description", res.Description)
}

func TestExtractLinkResult_EmptyDocument(t *testing.T) {
	res := extractLinkResult(parseDoc(t, `<html><head></head><body></body></html>`))
	assert.Nil(t, res)
}

func newTestLinkMetadata(t *testing.T) *HTMLLinkMetadata {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTMLLinkMetadata(5*time.Second, logger)
}

func TestHTMLLinkMetadata_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, samplePage)
	}))
	defer srv.Close()

	res, err := newTestLinkMetadata(t).Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Foo Cafe", res.Title)
}

func TestHTMLLinkMetadata_Resolve_NonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7"))
	}))
	defer srv.Close()

	res, err := newTestLinkMetadata(t).Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Nil(t, res, "non-HTML content is nothing-found, not an error")
}

func TestHTMLLinkMetadata_Resolve_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestLinkMetadata(t).Resolve(context.Background(), srv.URL)
	assert.Error(t, err)
}
