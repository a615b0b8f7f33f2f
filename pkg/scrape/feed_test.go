package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspager/pkg/scrape"
)

// feedXML mimics the front page mirror: points ride inside the description html
const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Hacker News: Front Page</title>
<link>https://news.ycombinator.com/</link>
<item>
<title>Show HN: Tiny LLM runtime in 2k lines</title>
<link>https://example.com/tiny-llm</link>
<description><![CDATA[<p>Article URL: <a href="https://example.com/tiny-llm">https://example.com/tiny-llm</a></p><p>Points: 245</p><p># Comments: 97</p>]]></description>
</item>
<item>
<title>Postgres 18 released</title>
<link>https://example.com/pg18</link>
<description><![CDATA[<p>Points: 512</p>]]></description>
</item>
<item>
<title>Story without points</title>
<link>https://example.com/np</link>
<description><![CDATA[<p>just a blurb</p>]]></description>
</item>
</channel>
</rss>`

func TestFeedPage_Stories(t *testing.T) {
	t.Run("parses items in feed order", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(feedXML))
		}))
		defer srv.Close()

		page := scrape.NewFeedPage(srv.URL, 5*time.Second, "newspager/test")
		stories := page.Stories(context.Background())

		require.Len(t, stories, 3)
		assert.Equal(t, "Show HN: Tiny LLM runtime in 2k lines", stories[0].Title)
		assert.Equal(t, "https://example.com/tiny-llm", stories[0].Link)
		assert.Equal(t, "245 points", stories[0].Score)
		assert.Equal(t, "512 points", stories[1].Score)
		assert.Empty(t, stories[2].Score, "description without points line")

		assert.Equal(t, "newspager/test", gotUA)
	})

	t.Run("server error contained as empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		page := scrape.NewFeedPage(srv.URL, 5*time.Second, "newspager/test")
		assert.Empty(t, page.Stories(context.Background()))
	})

	t.Run("unreachable host contained as empty list", func(t *testing.T) {
		page := scrape.NewFeedPage("http://127.0.0.1:1/feed", time.Second, "newspager/test")
		assert.Empty(t, page.Stories(context.Background()))
	})

	t.Run("garbage body contained as empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not a feed"))
		}))
		defer srv.Close()

		page := scrape.NewFeedPage(srv.URL, 5*time.Second, "newspager/test")
		assert.Empty(t, page.Stories(context.Background()))
	})

	t.Run("empty feed contained as empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>empty</title></channel></rss>`))
		}))
		defer srv.Close()

		page := scrape.NewFeedPage(srv.URL, 5*time.Second, "newspager/test")
		assert.Empty(t, page.Stories(context.Background()))
	})
}
