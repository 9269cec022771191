// Package slog provides logging decorators for the capture
// collaborator interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	capture "github.com/kublaios/obsidian-capture"
)

// Ensure LoggingFetcher implements capture.Fetcher at compile time.
var _ capture.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with timing and size logging.
type LoggingFetcher struct {
	next   capture.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next capture.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, urlOrPath string) (*capture.Source, error) {
	begin := time.Now()
	src, err := f.next.Fetch(ctx, urlOrPath)
	if err != nil {
		f.logger.Error("fetch",
			"url", urlOrPath,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return nil, err
	}

	f.logger.Info("fetch",
		"url", urlOrPath,
		"bytes", src.RawSizeBytes,
		"encoding", src.Encoding,
		"duration", time.Since(begin),
	)
	return src, nil
}
