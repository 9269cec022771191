package mock

import (
	"context"

	capture "github.com/kublaios/obsidian-capture"
)

var _ capture.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of capture.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, urlOrPath string) (*capture.Source, error)
}

func (f *Fetcher) Fetch(ctx context.Context, urlOrPath string) (*capture.Source, error) {
	return f.FetchFn(ctx, urlOrPath)
}
