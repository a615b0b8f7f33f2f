package content

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newspager/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Extractor pulls readable text out of an article URL
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// excerptRunes caps how much article text rides along with a story,
// the model needs a taste of the article, not the whole piece
const excerptRunes = 400

// Enricher attaches article excerpts to the leading stories before
// classification. Failures stay per-story: a dead link costs that one story
// its excerpt and nothing else.
type Enricher struct {
	extractor     Extractor
	base          *url.URL
	top           int
	maxConcurrent int
}

// NewEnricher creates an enricher fetching at most top excerpts with the
// given worker limit. Relative story links resolve against baseURL.
func NewEnricher(extractor Extractor, baseURL string, top, maxConcurrent int) *Enricher {
	base, err := url.Parse(baseURL)
	if err != nil {
		lgr.Printf("[WARN] can't parse base URL %q, relative links won't resolve: %v", baseURL, err)
		base = nil
	}
	return &Enricher{extractor: extractor, base: base, top: top, maxConcurrent: maxConcurrent}
}

// Enrich returns a copy of stories with excerpts attached to the first top
// entries. Length and order never change, only the Excerpt field is filled in.
func (e *Enricher) Enrich(ctx context.Context, stories []domain.Story) []domain.Story {
	enriched := make([]domain.Story, len(stories))
	copy(enriched, stories)

	n := e.top
	if n > len(enriched) {
		n = len(enriched)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrent)

	// each worker owns its own index, no shared state between them
	for i := 0; i < n; i++ {
		g.Go(func() error {
			link := e.resolve(enriched[i].Link)
			if link == "" {
				return nil
			}
			text, err := e.extractor.Extract(gctx, link)
			if err != nil {
				lgr.Printf("[WARN] can't enrich %q from %s: %v", enriched[i].Title, link, err)
				return nil
			}
			// the excerpt rides inside a single prompt line, flatten it
			enriched[i].Excerpt = clip(strings.Join(strings.Fields(text), " "), excerptRunes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] enrichment worker pool error: %v", err)
	}
	return enriched
}

// resolve turns a story link absolute against the page base, empty stays empty
func (e *Enricher) resolve(link string) string {
	if link == "" {
		return ""
	}
	if e.base == nil {
		return link
	}
	u, err := e.base.Parse(link)
	if err != nil {
		lgr.Printf("[WARN] can't resolve story link %q: %v", link, err)
		return ""
	}
	return u.String()
}

// clip shortens text to at most n runes, marking the cut
func clip(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
