package mock

import capture "github.com/kublaios/obsidian-capture"

var _ capture.Excluder = (*Excluder)(nil)

// Excluder is a mock implementation of capture.Excluder.
type Excluder struct {
	ExcludeFn func(html string, selectors []string) (string, *capture.ExclusionResult, error)
}

func (e *Excluder) Exclude(html string, selectors []string) (string, *capture.ExclusionResult, error) {
	return e.ExcludeFn(html, selectors)
}
