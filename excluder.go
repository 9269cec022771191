package capture

// Excluder applies exclusion selectors to an HTML document before content
// extraction.
type Excluder interface {
	// Exclude parses the document, removes every element matched by the
	// valid selectors in input order, and returns the serialized document
	// alongside the per-run bookkeeping. A TooManySelectorsError is
	// returned, with the input unmodified, when the selector count exceeds
	// the cap; per-selector failures are recorded in the result instead of
	// being returned.
	Exclude(html string, selectors []string) (string, *ExclusionResult, error)
}
