package batch

import (
	"context"

	capture "github.com/kublaios/obsidian-capture"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of captures running at once when no
// limit is configured.
const DefaultConcurrency = 4

// CaptureService runs a single capture. Satisfied by *capture.Capturer.
type CaptureService interface {
	Capture(ctx context.Context, req *capture.Request) (*capture.Result, error)
}

// Item is the outcome of one URL in a batch. Exactly one of Result and
// Err is set.
type Item struct {
	URLOrPath string
	Result    *capture.Result
	Err       error
}

// Runner captures a list of URLs concurrently. Failures are recorded
// per item rather than aborting the batch.
type Runner struct {
	service     CaptureService
	limiter     *DomainLimiter
	concurrency int
}

// NewRunner creates a Runner. A nil limiter disables rate limiting and
// a non-positive concurrency falls back to DefaultConcurrency.
func NewRunner(service CaptureService, limiter *DomainLimiter, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Runner{service: service, limiter: limiter, concurrency: concurrency}
}

// Run captures every URL and returns one Item per input, in input
// order. It returns an error only when the context is canceled before
// the batch completes.
func (r *Runner) Run(ctx context.Context, urls []string, cfg *capture.Config, dryRun bool) ([]Item, error) {
	items := make([]Item, len(urls))

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			items[i] = Item{URLOrPath: u}

			if r.limiter != nil {
				if err := r.limiter.Wait(ctx, u); err != nil {
					items[i].Err = err
					return nil
				}
			}

			result, err := r.service.Capture(ctx, &capture.Request{
				URLOrPath: u,
				Config:    cfg,
				DryRun:    dryRun,
			})
			if err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Result = result
			return nil
		})
	}

	// Worker errors are recorded per item; Wait only synchronizes.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
