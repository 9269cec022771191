package capture

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. baseURL, when
	// non-empty, is used to resolve relative links. Returns an ECONVERSION
	// error on failure.
	Convert(html string, baseURL string) (string, error)
}
