package providers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/capturedesk/capturedesk/internal/entity"
)

const (
	linkUserAgent    = "capturedesk/1.0"
	maxExtractedText = 20_000
)

// HTMLLinkMetadata fetches a page over HTTP and extracts OpenGraph and
// standard meta tags. It is the default LinkMetadata implementation.
type HTMLLinkMetadata struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTMLLinkMetadata(timeout time.Duration, logger *slog.Logger) *HTMLLinkMetadata {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTMLLinkMetadata{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (p *HTMLLinkMetadata) Resolve(ctx context.Context, url string) (*entity.LinkResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", linkUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		p.logger.Debug("linkmeta.skip_non_html", "url", url, "content_type", ct)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return extractLinkResult(doc), nil
}

// extractLinkResult pulls metadata out of a parsed document. OpenGraph
// tags win over their plain-HTML equivalents.
func extractLinkResult(doc *goquery.Document) *entity.LinkResult {
	res := &entity.LinkResult{Web: &entity.WebContext{}}

	res.Title = metaContent(doc, "og:title")
	if res.Title == "" {
		res.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	res.Description = metaContent(doc, "og:description")
	if res.Description == "" {
		res.Description = metaName(doc, "description")
	}
	res.ImageURL = metaContent(doc, "og:image")
	res.Web.SiteName = metaContent(doc, "og:site_name")

	if kw := metaName(doc, "keywords"); kw != "" {
		for _, t := range strings.Split(kw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				res.Tags = append(res.Tags, t)
			}
		}
	}
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if t, ok := s.Attr("content"); ok {
			if t = strings.TrimSpace(t); t != "" {
				res.Tags = append(res.Tags, t)
			}
		}
	})

	doc.Find("script, style, noscript").Remove()
	body := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	if len(body) > maxExtractedText {
		body = body[:maxExtractedText]
	}
	res.Web.ExtractedText = body

	if res.Title == "" && res.Description == "" && res.Web.ExtractedText == "" {
		return nil
	}
	return res
}

func metaContent(doc *goquery.Document, property string) string {
	v, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(v)
}

func metaName(doc *goquery.Document, name string) string {
	v, _ := doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).First().Attr("content")
	return strings.TrimSpace(v)
}
