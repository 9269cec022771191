package capture

import "context"

// Source holds fetched article content and transport metadata.
type Source struct {
	// URL is the original URL or local file path.
	URL string

	// Content is the decoded text content.
	Content string

	// Encoding is the character encoding the content was decoded from.
	Encoding string

	// ContentType is the reported media type ("text/html" for local files).
	ContentType string

	// StatusCode is the HTTP status (200 is simulated for local files).
	StatusCode int

	// RawSizeBytes is the size of the undecoded payload.
	RawSizeBytes int64
}

// Fetcher retrieves decoded HTML from a URL or local file path.
type Fetcher interface {
	// Fetch retrieves and decodes the content at urlOrPath, enforcing the
	// implementation's timeout and size ceiling. Failures carry the
	// ETIMEOUT, ESIZELIMIT, EENCODING, or EFETCH error code.
	Fetch(ctx context.Context, urlOrPath string) (*Source, error)
}
