package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/newspager/pkg/domain"
)

//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

// Renderer loads a page in a browser-equivalent environment and returns the
// rendered DOM as HTML
type Renderer interface {
	Render(ctx context.Context, pageURL, waitFor string) (string, error)
}

// storyRow matches one story's title row, the score lives in the row after it
const storyRow = "tr.athing"

// FrontPage extracts the ranked story list from the rendered front page.
type FrontPage struct {
	renderer Renderer
	url      string
}

// NewFrontPage creates a front page scraper on top of the given renderer
func NewFrontPage(renderer Renderer, url string) *FrontPage {
	return &FrontPage{renderer: renderer, url: url}
}

// Stories renders the page and returns stories in presentation order.
// Failures are contained here: a render or parse error is logged and yields
// an empty list, it never aborts the surrounding run.
func (f *FrontPage) Stories(ctx context.Context) []domain.Story {
	html, err := f.renderer.Render(ctx, f.url, storyRow)
	if err != nil {
		lgr.Printf("[WARN] front page render failed: %v", err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		lgr.Printf("[WARN] front page not parsable: %v", err)
		return nil
	}

	stories := parseStories(doc)
	if len(stories) == 0 {
		lgr.Printf("[WARN] no stories found on %s", f.url)
		return nil
	}

	lgr.Printf("[DEBUG] scraped %d stories from %s", len(stories), f.url)
	return stories
}

// parseStories maps the document to the story list. The page lays each story
// out as two table rows: tr.athing carries rank, title and link, and the row
// right after it carries the score. Rows with missing cells degrade to empty
// fields rather than being dropped, order stays as rendered.
func parseStories(doc *goquery.Document) []domain.Story {
	var stories []domain.Story
	doc.Find(storyRow).Each(func(_ int, row *goquery.Selection) {
		titleLink := row.Find("span.titleline > a").First()
		link, _ := titleLink.Attr("href")
		stories = append(stories, domain.Story{
			Title: strings.TrimSpace(titleLink.Text()),
			Link:  link,
			Score: strings.TrimSpace(row.Next().Find("span.score").First().Text()),
		})
	})
	return stories
}
