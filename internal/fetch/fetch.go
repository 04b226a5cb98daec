// Package fetch retrieves job descriptions from job posting URLs. It fetches
// the page over plain HTTP first and falls back to a headless browser when
// the page looks like a JavaScript-rendered SPA.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is the user agent string for HTTP requests.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeChecker/1.0)"

	// minContentLength is the minimum extracted text length to consider an
	// HTTP fetch successful. Shorter content suggests a JS-rendered page.
	minContentLength = 500
)

// Error represents a failure to retrieve or process a URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
}

// Fetcher retrieves job descriptions from URLs.
type Fetcher struct {
	client *http.Client
	opts   Options
	log    *zap.Logger
}

// New creates a Fetcher. Zero-value options get defaults.
func New(opts Options, log *zap.Logger) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		log:    log,
	}
}

// FetchJobDescription downloads a job posting page and extracts the job
// description text from it.
func (f *Fetcher) FetchJobDescription(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	platform := DetectPlatform(urlStr)
	f.log.Debug("fetching job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)),
	)

	html, err := f.fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := extractText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract content", Cause: err}
	}

	if f.opts.UseBrowser && looksUnrendered(text) {
		f.log.Info("page content too short, rendering with headless browser",
			zap.String("url", urlStr),
			zap.Int("text_length", len(text)),
		)
		rendered, err := f.renderWithBrowser(ctx, urlStr)
		if err != nil {
			return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
		}
		text, err = extractText(rendered, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform))
		if err != nil {
			return "", &Error{URL: urlStr, Message: "failed to extract rendered content", Cause: err}
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &Error{URL: urlStr, Message: "no job description content found"}
	}
	return text, nil
}

func (f *Fetcher) fetchHTML(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

// looksUnrendered reports whether extracted text is short enough to suggest
// the page needs JavaScript to render its content.
func looksUnrendered(text string) bool {
	return len(strings.TrimSpace(text)) < minContentLength
}

// extractText parses HTML and returns the main body text. Noise elements are
// removed first, then content is located via the selectors in order, falling
// back to the body element.
func extractText(html string, contentSelectors, noiseSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

func cleanWhitespace(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
