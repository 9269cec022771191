package capture

// ExtractResult holds the content region selected from an HTML document.
type ExtractResult struct {
	// HTMLFragment is the outer HTML of the selected region.
	HTMLFragment string

	// TextContent is the region's whitespace-normalized text.
	TextContent string

	// Selector is the selector that produced the region.
	Selector string

	// CharacterCount is len(TextContent).
	CharacterCount int

	// AttemptedSelectors lists the selectors tried, in order, up to and
	// including the one that matched.
	AttemptedSelectors []string
}

// Extractor selects the primary content region from an HTML document.
type Extractor interface {
	// Extract tries each selector in order and returns the first region
	// whose text content is at least minChars long. Returns an
	// ENOSELECTORMATCH error when no selector produces sufficient content.
	Extract(html string, selectors []string, minChars int) (*ExtractResult, error)
}
