// Package trafilatura extracts main content with the go-trafilatura
// engine instead of a configured selector cascade.
package trafilatura

import (
	"bytes"
	"strings"

	capture "github.com/kublaios/obsidian-capture"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements capture.Extractor at compile time.
var _ capture.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// The configured selector cascade is ignored; the selector label on
// results is always "trafilatura".
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, capture.Errorf(capture.ENOSELECTORMATCH, "trafilatura extraction failed: %v", err)
	}

	var fragment string
	if result.ContentNode != nil {
		fragment, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, capture.Errorf(capture.EINTERNAL, "rendering extracted content: %v", err)
		}
	}

	text := strings.Join(strings.Fields(result.ContentText), " ")
	if len(text) < minChars {
		return nil, capture.Errorf(capture.ENOSELECTORMATCH,
			"trafilatura extracted %d characters, need at least %d", len(text), minChars)
	}

	return &capture.ExtractResult{
		HTMLFragment:       fragment,
		TextContent:        text,
		Selector:           "trafilatura",
		CharacterCount:     len(text),
		AttemptedSelectors: []string{"trafilatura"},
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
