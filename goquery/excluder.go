// Package goquery provides goquery-backed implementations of the capture
// interfaces: the exclusion engine, the selector-based content extractor,
// and the metadata extractor.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	capture "github.com/kublaios/obsidian-capture"
)

// Rejection reasons reported by selector validation.
const (
	reasonEmpty     = "empty or invalid selector"
	reasonProtected = "protected selector (html/body cannot be excluded)"
)

// richContentSelector matches element kinds that make a node meaningful
// even without text, images, or links.
const richContentSelector = "video, audio, iframe, form, table, canvas, svg"

// MatcherFunc compiles a selector string into a matcher, failing on
// malformed input. It is the injected query capability of the exclusion
// engine: swapping it swaps the selector engine.
type MatcherFunc func(selector string) (goquery.Matcher, error)

// CompileMatcher is the default MatcherFunc, backed by cascadia.
func CompileMatcher(selector string) (goquery.Matcher, error) {
	return cascadia.Compile(selector)
}

// Ensure Excluder implements capture.Excluder at compile time.
var _ capture.Excluder = (*Excluder)(nil)

// Excluder removes elements matched by exclusion selectors from a parsed
// document, tracking per-selector and aggregate outcomes.
type Excluder struct {
	maxSelectors int
	matcher      MatcherFunc
}

// ExcluderOption configures an Excluder.
type ExcluderOption func(*Excluder)

// WithMaxSelectors overrides the selector cap. Defaults to
// capture.MaxExclusionSelectors.
func WithMaxSelectors(n int) ExcluderOption {
	return func(e *Excluder) {
		e.maxSelectors = n
	}
}

// WithMatcherFunc replaces the selector compiler.
func WithMatcherFunc(fn MatcherFunc) ExcluderOption {
	return func(e *Excluder) {
		e.matcher = fn
	}
}

// NewExcluder creates a new Excluder.
func NewExcluder(opts ...ExcluderOption) *Excluder {
	e := &Excluder{
		maxSelectors: capture.MaxExclusionSelectors,
		matcher:      CompileMatcher,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate classifies selectors in input order. The cap is checked against
// the raw input count before any per-selector work; duplicates and invalid
// strings count toward it. For each selector under the cap the checks run
// in a fixed order: empty, protected, syntax. Protection is checked before
// syntax, so a broken selector leading with "html" reports the protection
// reason.
func (e *Excluder) Validate(selectors []string) (*capture.ValidationResult, error) {
	if len(selectors) > e.maxSelectors {
		return nil, &capture.TooManySelectorsError{Count: len(selectors), Limit: e.maxSelectors}
	}

	result := &capture.ValidationResult{TotalCount: len(selectors)}

	for _, selector := range selectors {
		if strings.TrimSpace(selector) == "" {
			result.Invalid = append(result.Invalid, capture.RejectedSelector{
				Selector: selector,
				Reason:   reasonEmpty,
			})
			continue
		}
		if capture.IsProtectedSelector(selector) {
			result.Invalid = append(result.Invalid, capture.RejectedSelector{
				Selector: selector,
				Reason:   reasonProtected,
			})
			continue
		}
		if _, err := e.matcher(selector); err != nil {
			result.Invalid = append(result.Invalid, capture.RejectedSelector{
				Selector: selector,
				Reason:   fmt.Sprintf("invalid CSS selector syntax: %v", err),
			})
			continue
		}
		result.Valid = append(result.Valid, selector)
	}

	return result, nil
}

// Apply removes every element matched by the valid selectors, in input
// order, mutating doc in place. Each selector queries the live tree, so
// later selectors observe earlier removals. A selector that fails during
// execution is recorded as a failed outcome and does not stop the run;
// only the selector cap aborts, before any mutation.
func (e *Excluder) Apply(doc *goquery.Document, selectors []string) (*capture.ExclusionResult, error) {
	originalCount := doc.Find("*").Length()

	validation, err := e.Validate(selectors)
	if err != nil {
		return nil, err
	}

	outcomes := make([]capture.SelectorOutcome, 0, validation.TotalCount)

	for _, selector := range validation.Valid {
		matcher, err := e.matcher(selector)
		if err != nil {
			outcomes = append(outcomes, capture.SelectorOutcome{
				Selector:     selector,
				ErrorMessage: fmt.Sprintf("failed to apply selector: %v", err),
			})
			continue
		}

		// The match set is collected before removal begins, so a selector
		// hitting both a container and its descendants counts every match.
		matches := doc.FindMatcher(matcher)
		removed := matches.Length()
		matches.Remove()

		outcomes = append(outcomes, capture.SelectorOutcome{
			Selector:        selector,
			Success:         true,
			ElementsRemoved: removed,
		})
	}

	for _, rejected := range validation.Invalid {
		outcomes = append(outcomes, capture.SelectorOutcome{
			Selector:     rejected.Selector,
			ErrorMessage: rejected.Reason,
		})
	}

	summary := capture.NewExclusionSummary(outcomes, originalCount, DetectEmptyPrimaryContent(doc))

	return &capture.ExclusionResult{Summary: summary, Outcomes: outcomes}, nil
}

// Exclude implements capture.Excluder over raw HTML: parse, apply,
// serialize.
func (e *Excluder) Exclude(html string, selectors []string) (string, *capture.ExclusionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, capture.Errorf(capture.EINVALID, "failed to parse HTML: %v", err)
	}

	result, err := e.Apply(doc, selectors)
	if err != nil {
		return "", nil, err
	}

	out, err := doc.Html()
	if err != nil {
		return "", nil, capture.Errorf(capture.EINTERNAL, "failed to serialize HTML: %v", err)
	}

	return out, result, nil
}

// IsContentEmpty reports whether a node holds no meaningful content: no
// images, no links, no non-whitespace text, and none of the rich content
// element kinds. Purely structural wrappers are empty however deeply
// nested.
func IsContentEmpty(sel *goquery.Selection) bool {
	return !hasMeaningfulContent(sel)
}

func hasMeaningfulContent(sel *goquery.Selection) bool {
	if sel.Find("img").Length() > 0 {
		return true
	}
	if sel.Find("a").Length() > 0 {
		return true
	}
	if strings.TrimSpace(sel.Text()) != "" {
		return true
	}
	return sel.Find(richContentSelector).Length() > 0
}

// DetectEmptyPrimaryContent reports whether the document's primary content
// landmarks (article, main, [role="main"]) are devoid of meaning. It
// returns true when no landmark exists at all, false as soon as any
// landmark has meaningful content, and true only when every landmark is
// empty. A page may legitimately carry an empty template landmark next to
// a populated one; only all of them going empty signals content loss.
func DetectEmptyPrimaryContent(doc *goquery.Document) bool {
	var landmarks []*goquery.Selection
	for _, selector := range capture.PrimaryContentSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			landmarks = append(landmarks, sel)
		})
	}

	if len(landmarks) == 0 {
		return true
	}

	for _, landmark := range landmarks {
		if hasMeaningfulContent(landmark) {
			return false
		}
	}
	return true
}
