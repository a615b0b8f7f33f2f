package scrape

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newspager/pkg/domain"
)

// pointsExpr recovers the score from a mirror item description, which
// carries it as a "Points: N" line inside HTML markup
var pointsExpr = regexp.MustCompile(`Points:\s*(\d+)`)

// feedLanguages are common reader Accept-Language values, one picked per fetch
var feedLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,de;q=0.8",
}

// FeedPage reads the front page through its RSS mirror, for hosts where
// running a browser is not an option. Same contract as FrontPage: failures
// are contained and come back as an empty list.
type FeedPage struct {
	client    *http.Client
	url       string
	userAgent string
	stripTags *bluemonday.Policy
}

// NewFeedPage creates a feed-backed story source
func NewFeedPage(url string, timeout time.Duration, userAgent string) *FeedPage {
	return &FeedPage{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		url:       url,
		userAgent: userAgent,
		stripTags: bluemonday.StrictPolicy(),
	}
}

// Stories fetches and parses the mirror feed and returns stories in feed
// order, which mirrors the front page ranking
func (f *FeedPage) Stories(ctx context.Context) []domain.Story {
	body, err := f.fetch(ctx)
	if err != nil {
		lgr.Printf("[WARN] feed fetch failed: %v", err)
		return nil
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		lgr.Printf("[WARN] feed not parsable: %v", err)
		return nil
	}

	if len(feed.Items) == 0 {
		lgr.Printf("[WARN] no stories found in %s", f.url)
		return nil
	}

	stories := make([]domain.Story, 0, len(feed.Items))
	for _, item := range feed.Items {
		stories = append(stories, domain.Story{
			Title: item.Title,
			Link:  item.Link,
			Score: f.extractScore(item.Description),
		})
	}

	lgr.Printf("[DEBUG] scraped %d stories from %s", len(stories), f.url)
	return stories
}

// extractScore pulls the points count out of the item description html,
// flattened to plain text first. Returns an empty string when the feed
// doesn't carry one.
func (f *FeedPage) extractScore(description string) string {
	m := pointsExpr.FindStringSubmatch(f.stripTags.Sanitize(description))
	if m == nil {
		return ""
	}
	return m[1] + " points"
}

// fetch retrieves the feed content, dressed as a regular feed reader
func (f *FeedPage) fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", feedLanguages[rand.Intn(len(feedLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
