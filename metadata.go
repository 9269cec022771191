package capture

// Metadata holds article metadata extracted from an HTML document. All
// fields are optional; empty strings mean the field was not found.
type Metadata struct {
	Title        string
	Author       string
	PublishedAt  string
	Description  string
	Keywords     string
	CanonicalURL string
	SiteName     string
}

// Fields returns the non-empty metadata fields keyed by their front matter
// names.
func (m *Metadata) Fields() map[string]any {
	fields := make(map[string]any)
	for key, value := range map[string]string{
		"title":         m.Title,
		"author":        m.Author,
		"published_at":  m.PublishedAt,
		"description":   m.Description,
		"keywords":      m.Keywords,
		"canonical_url": m.CanonicalURL,
		"site_name":     m.SiteName,
	} {
		if value != "" {
			fields[key] = value
		}
	}
	return fields
}

// MetadataExtractor extracts article metadata from HTML content.
type MetadataExtractor interface {
	// ExtractMetadata parses the document and collects metadata from meta
	// tags, structured attributes, and common content selectors.
	// sourceURL provides fallbacks for canonical URL and site name.
	ExtractMetadata(html string, sourceURL string) (*Metadata, error)

	// GenerateTags derives Obsidian-style "#tag" strings from the
	// document's SEO keywords, tag elements, or the URL path.
	GenerateTags(html string, sourceURL string) []string
}
