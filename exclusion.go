package capture

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxExclusionSelectors is the hard cap on the number of exclusion
// selectors accepted per run. The cap bounds raw rule intake, so
// duplicates and invalid strings count toward it.
const MaxExclusionSelectors = 100

// HighRemovalThreshold is the removal ratio at or above which an exclusion
// run is flagged as having removed a suspiciously large share of the
// document.
const HighRemovalThreshold = 0.4

// PrimaryContentSelectors are the landmark selectors inspected when
// deciding whether a document still has meaningful primary content after
// exclusions.
var PrimaryContentSelectors = []string{"article", "main", `[role="main"]`}

// protectedSelectorPattern matches selectors whose leading token is the
// document root (html) or primary container (body). Only the leading token
// counts: "div.body" is not protected.
var protectedSelectorPattern = regexp.MustCompile(`^(html|body)\b`)

// IsProtectedSelector reports whether a CSS selector targets the protected
// root elements (html, body). Removing either would destroy the parse tree
// anchor. An empty selector is not protected; it fails validation
// separately.
func IsProtectedSelector(selector string) bool {
	if selector == "" {
		return false
	}
	return protectedSelectorPattern.MatchString(strings.ToLower(strings.TrimSpace(selector)))
}

// TooManySelectorsError is returned when the number of exclusion selectors
// exceeds the configured cap. The cap is a resource-exhaustion guard
// enforced before any per-selector classification.
type TooManySelectorsError struct {
	Count int
	Limit int
}

// Error implements the error interface.
func (e *TooManySelectorsError) Error() string {
	return fmt.Sprintf("too many selectors: %d provided, limit is %d", e.Count, e.Limit)
}

// RejectedSelector pairs a rejected selector with a human-readable reason.
type RejectedSelector struct {
	Selector string
	Reason   string
}

// ValidationResult partitions a selector list into usable and rejected
// selectors, preserving input order within each partition.
type ValidationResult struct {
	Valid      []string
	Invalid    []RejectedSelector
	TotalCount int

	// CapExceeded is retained for reporting symmetry but is always false
	// on a normal return: exceeding the cap is signaled via
	// TooManySelectorsError instead.
	CapExceeded bool
}

// SelectorOutcome records the result of applying a single exclusion
// selector. ErrorMessage is non-empty iff Success is false, and
// ElementsRemoved is zero for failed outcomes.
type SelectorOutcome struct {
	Selector        string
	Success         bool
	ElementsRemoved int
	ErrorMessage    string
}

// ExclusionSummary aggregates the outcomes of one exclusion run.
type ExclusionSummary struct {
	SelectorsProcessed   int
	ElementsRemoved      int
	OriginalElementCount int
	SuccessfulSelectors  int
	FailedSelectors      int

	// EmptyPrimaryContentWarning is true when every primary content
	// landmark is empty after removal, or when none exist at all.
	EmptyPrimaryContentWarning bool
}

// RemovalRatio returns the share of the original element census removed by
// the run. Defined as 0.0 for an empty document.
func (s *ExclusionSummary) RemovalRatio() float64 {
	if s.OriginalElementCount == 0 {
		return 0.0
	}
	return float64(s.ElementsRemoved) / float64(s.OriginalElementCount)
}

// HighRemoval reports whether the removal ratio reached
// HighRemovalThreshold.
func (s *ExclusionSummary) HighRemoval() bool {
	return s.RemovalRatio() >= HighRemovalThreshold
}

// NewExclusionSummary folds per-selector outcomes into a summary. The
// emptiness flag is computed by the applier over the mutated tree and
// passed in; everything else is derived from the outcomes and the
// pre-removal census.
func NewExclusionSummary(outcomes []SelectorOutcome, originalCount int, emptyPrimary bool) ExclusionSummary {
	summary := ExclusionSummary{
		SelectorsProcessed:         len(outcomes),
		OriginalElementCount:       originalCount,
		EmptyPrimaryContentWarning: emptyPrimary,
	}
	for _, o := range outcomes {
		if o.Success {
			summary.SuccessfulSelectors++
		} else {
			summary.FailedSelectors++
		}
		summary.ElementsRemoved += o.ElementsRemoved
	}
	return summary
}

// ExclusionResult is the outcome of one exclusion run. The document tree
// itself is mutated in place by the applier and stays with the caller;
// the result carries the bookkeeping only.
type ExclusionResult struct {
	Summary  ExclusionSummary
	Outcomes []SelectorOutcome
}
