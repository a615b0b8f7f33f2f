package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newspager/pkg/domain"
	"github.com/umputun/newspager/pkg/llm"
)

//go:generate moq -out mocks/lister.go -pkg mocks -skip-ensure -fmt goimports . Lister
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester
//go:generate moq -out mocks/texter.go -pkg mocks -skip-ensure -fmt goimports . Texter

// Lister produces the current front page stories. Scrape failures are
// contained behind this interface and come back as an empty list.
type Lister interface {
	Stories(ctx context.Context) []domain.Story
}

// Enricher attaches article excerpts to the leading stories
type Enricher interface {
	Enrich(ctx context.Context, stories []domain.Story) []domain.Story
}

// Digester picks the relevant stories and writes the digest text
type Digester interface {
	Digest(ctx context.Context, stories []domain.Story) (string, error)
}

// Texter delivers one text message and returns the provider message id
type Texter interface {
	Send(ctx context.Context, body string) (string, error)
}

// Scheduler drives the scrape, digest and notify pipeline on a fixed
// interval. Runs never overlap, a tick landing mid-run is skipped.
type Scheduler struct {
	lister   Lister
	enricher Enricher // optional, nil disables enrichment
	digester Digester
	texter   Texter
	interval time.Duration
	busy     atomic.Bool
}

// Report is the outcome of a single run, returned for logging and tests
type Report struct {
	Skipped   bool   // run skipped, the previous one was still going
	Stories   int    // stories scraped this run
	Digest    string // trimmed model reply
	Worthy    bool   // digest passed the notification gate
	MessageID string // provider message id when a text went out
	Err       error  // digest stage failure, run aborted before delivery
	SendErr   error  // delivery failure, run otherwise complete
}

// NewScheduler creates a scheduler running the pipeline every interval
func NewScheduler(lister Lister, enricher Enricher, digester Digester, texter Texter, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 3 * time.Hour
	}
	return &Scheduler{
		lister:   lister,
		enricher: enricher,
		digester: digester,
		texter:   texter,
		interval: interval,
	}
}

// Run blocks until ctx is canceled, executing one run immediately and then
// one per tick. Run failures stay inside their round, the loop survives them.
func (s *Scheduler) Run(ctx context.Context) {
	lgr.Printf("[INFO] scheduler started, checking every %v", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] scheduler stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single scrape, digest and notify round and reports what
// happened. A digest failure aborts the round before delivery, a delivery
// failure is recorded with the round otherwise complete. Either way the
// scheduler is idle again when this returns.
func (s *Scheduler) RunOnce(ctx context.Context) Report {
	if !s.busy.CompareAndSwap(false, true) {
		lgr.Printf("[WARN] previous run still in progress, skipping this one")
		return Report{Skipped: true}
	}
	defer s.busy.Store(false)

	st := time.Now()
	lgr.Printf("[INFO] run started")

	stories := s.lister.Stories(ctx)
	lgr.Printf("[INFO] scraped %d stories", len(stories))

	if s.enricher != nil {
		stories = s.enricher.Enrich(ctx, stories)
	}

	report := Report{Stories: len(stories)}

	digest, err := s.digester.Digest(ctx, stories)
	if err != nil {
		lgr.Printf("[ERROR] digest failed, no notification this round: %v", err)
		report.Err = err
		return report
	}
	report.Digest = digest
	lgr.Printf("[DEBUG] digest: %q", digest)

	report.Worthy = llm.Noteworthy(digest)
	if !report.Worthy {
		lgr.Printf("[INFO] nothing worth a message, run done in %v", time.Since(st).Round(time.Millisecond))
		return report
	}

	id, err := s.texter.Send(ctx, digest)
	if err != nil {
		lgr.Printf("[ERROR] digest ready but delivery failed: %v", err)
		report.SendErr = err
		return report
	}
	report.MessageID = id

	lgr.Printf("[INFO] notification %s sent, run done in %v", id, time.Since(st).Round(time.Millisecond))
	return report
}
