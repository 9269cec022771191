package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	capture "github.com/kublaios/obsidian-capture"
)

// Ensure Extractor implements capture.Extractor at compile time.
var _ capture.Extractor = (*Extractor)(nil)

// Extractor selects the primary content region using an ordered CSS
// selector cascade. The first matching element whose text content reaches
// the minimum length wins.
type Extractor struct {
	matcher MatcherFunc
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{matcher: CompileMatcher}
}

// Extract tries each selector in order against the document. Selectors
// that fail to compile or match nothing are skipped; matched elements that
// fall short of minChars are skipped too, so a later selector can still
// win.
func (e *Extractor) Extract(html string, selectors []string, minChars int) (*capture.ExtractResult, error) {
	if len(selectors) == 0 {
		return nil, capture.Errorf(capture.EINVALID, "no selectors provided")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, capture.Errorf(capture.EINVALID, "failed to parse HTML: %v", err)
	}

	var attempted []string

	for _, selector := range selectors {
		attempted = append(attempted, selector)

		matcher, err := e.matcher(selector)
		if err != nil {
			continue
		}

		var result *capture.ExtractResult
		doc.FindMatcher(matcher).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := collapseWhitespace(sel.Text())
			if len(text) < minChars {
				return true
			}
			fragment, err := goquery.OuterHtml(sel)
			if err != nil {
				return true
			}
			result = &capture.ExtractResult{
				HTMLFragment:   fragment,
				TextContent:    text,
				Selector:       selector,
				CharacterCount: len(text),
			}
			return false
		})

		if result != nil {
			result.AttemptedSelectors = attempted
			return result, nil
		}
	}

	return nil, capture.Errorf(capture.ENOSELECTORMATCH,
		"no selector matched content with at least %d characters, tried selectors: %s",
		minChars, strings.Join(attempted, ", "))
}

// collapseWhitespace normalizes all whitespace runs to single spaces and
// trims the ends.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
