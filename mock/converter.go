package mock

import capture "github.com/kublaios/obsidian-capture"

var _ capture.Converter = (*Converter)(nil)

// Converter is a mock implementation of capture.Converter.
type Converter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *Converter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
