// Package readability extracts main content with the go-readability
// heuristic instead of a configured selector cascade.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	capture "github.com/kublaios/obsidian-capture"
)

// Ensure Extractor implements capture.Extractor at compile time.
var _ capture.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// The configured selector cascade is ignored; the selector label on
// results is always "readability".
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, selectors []string, minChars int) (*capture.ExtractResult, error) {
	if rawHTML == "" {
		return nil, capture.Errorf(capture.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, capture.Errorf(capture.ENOSELECTORMATCH, "readability extraction failed: %v", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if len(text) < minChars {
		return nil, capture.Errorf(capture.ENOSELECTORMATCH,
			"readability extracted %d characters, need at least %d", len(text), minChars)
	}

	return &capture.ExtractResult{
		HTMLFragment:       article.Content,
		TextContent:        text,
		Selector:           "readability",
		CharacterCount:     len(text),
		AttemptedSelectors: []string{"readability"},
	}, nil
}
