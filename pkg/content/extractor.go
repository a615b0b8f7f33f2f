package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// HTTPExtractor extracts article text from URLs using trafilatura
type HTTPExtractor struct {
	userAgent string
	client    *http.Client
}

// NewHTTPExtractor creates a new article text extractor
func NewHTTPExtractor(timeout time.Duration, userAgent string) *HTTPExtractor {
	return &HTTPExtractor{
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Extract retrieves the page at urlStr and returns its main text content
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	// tables are excluded, their cell text turns into word salad once the
	// excerpt is flattened to a single line
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   true,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}

	if result == nil || result.ContentText == "" {
		return "", fmt.Errorf("no text content extracted from %s", urlStr)
	}

	return strings.TrimSpace(result.ContentText), nil
}
