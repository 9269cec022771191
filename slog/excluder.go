package slog

import (
	"log/slog"
	"time"

	capture "github.com/kublaios/obsidian-capture"
)

// Ensure LoggingExcluder implements capture.Excluder at compile time.
var _ capture.Excluder = (*LoggingExcluder)(nil)

// LoggingExcluder wraps an Excluder and renders its diagnostics as log
// entries. Every entry carries operation=exclude so exclusion activity
// can be filtered out of a capture's log stream.
type LoggingExcluder struct {
	next   capture.Excluder
	logger *slog.Logger
}

// NewLoggingExcluder creates a new LoggingExcluder.
func NewLoggingExcluder(next capture.Excluder, logger *slog.Logger) *LoggingExcluder {
	return &LoggingExcluder{next: next, logger: logger}
}

// Exclude delegates to the wrapped excluder and logs per-selector
// failures, the removal summary, and the post-exclusion warnings.
func (e *LoggingExcluder) Exclude(html string, selectors []string) (string, *capture.ExclusionResult, error) {
	begin := time.Now()
	out, result, err := e.next.Exclude(html, selectors)
	if err != nil {
		e.logger.Error("exclusion aborted",
			"operation", "exclude",
			"err", err.Error(),
		)
		return "", nil, err
	}

	logger := e.logger.With("operation", "exclude")
	for _, outcome := range result.Outcomes {
		if outcome.Success {
			continue
		}
		logger.Warn("selector failed",
			"selector", outcome.Selector,
			"reason", outcome.ErrorMessage,
		)
	}

	summary := result.Summary
	if summary.HighRemoval() {
		logger.Warn("high removal ratio",
			"removed", summary.ElementsRemoved,
			"original", summary.OriginalElementCount,
			"ratio", summary.RemovalRatio(),
		)
	}
	if summary.EmptyPrimaryContentWarning {
		logger.Warn("primary content empty after exclusions")
	}
	if summary.ElementsRemoved > 0 {
		logger.Info("exclusions applied",
			"selectors", summary.SelectorsProcessed,
			"succeeded", summary.SuccessfulSelectors,
			"failed", summary.FailedSelectors,
			"removed", summary.ElementsRemoved,
			"duration", time.Since(begin),
		)
	}

	return out, result, nil
}
