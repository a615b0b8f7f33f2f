package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ChromeRenderer renders pages in headless Chrome over the DevTools protocol.
// Every Render call launches a fresh browser and tears it down before
// returning, so one run can never leak a session into the next.
type ChromeRenderer struct {
	timeout   time.Duration
	userAgent string
}

// NewChromeRenderer creates a renderer with the given per-render deadline
func NewChromeRenderer(timeout time.Duration, userAgent string) *ChromeRenderer {
	return &ChromeRenderer{timeout: timeout, userAgent: userAgent}
}

// Render navigates to pageURL, waits until waitFor is present in the settled
// DOM and returns the document HTML. The browser and its allocator are
// disposed on every path, including navigation failures and timeouts.
func (r *ChromeRenderer) Render(ctx context.Context, pageURL, waitFor string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(r.userAgent),
		chromedp.NoSandbox,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(waitFor, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", pageURL, err)
	}

	return html, nil
}
