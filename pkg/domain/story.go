package domain

// Story is one entry scraped from the front page, in page order. Fields carry
// whatever the page served: a malformed row degrades to empty strings, links
// stay as found (relative or absolute), and Score keeps the raw display text,
// e.g. "123 points".
type Story struct {
	Title   string
	Link    string
	Score   string
	Excerpt string // optional article text attached by the enricher, "" otherwise
}
