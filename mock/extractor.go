package mock

import capture "github.com/kublaios/obsidian-capture"

var _ capture.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of capture.Extractor.
type Extractor struct {
	ExtractFn func(html string, selectors []string, minChars int) (*capture.ExtractResult, error)
}

func (e *Extractor) Extract(html string, selectors []string, minChars int) (*capture.ExtractResult, error) {
	return e.ExtractFn(html, selectors, minChars)
}
