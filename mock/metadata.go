package mock

import capture "github.com/kublaios/obsidian-capture"

var _ capture.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of capture.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html, sourceURL string) (*capture.Metadata, error)
	GenerateTagsFn    func(html, sourceURL string) []string
}

func (m *MetadataExtractor) ExtractMetadata(html, sourceURL string) (*capture.Metadata, error) {
	return m.ExtractMetadataFn(html, sourceURL)
}

func (m *MetadataExtractor) GenerateTags(html, sourceURL string) []string {
	if m.GenerateTagsFn == nil {
		return nil
	}
	return m.GenerateTagsFn(html, sourceURL)
}
