// Package htmltomarkdown converts extracted HTML fragments into the
// Markdown body of an Obsidian note.
package htmltomarkdown

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	capture "github.com/kublaios/obsidian-capture"
)

// Ensure Converter implements capture.Converter at compile time.
var _ capture.Converter = (*Converter)(nil)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. When baseURL is an
// absolute http(s) URL, relative links and image sources in the HTML
// are resolved against it.
func (c *Converter) Convert(html, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", capture.Errorf(capture.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if domain := httpDomain(baseURL); domain != "" {
		opts = append(opts, converter.WithDomain(domain))
	}

	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", capture.Errorf(capture.ECONVERSION, "markdown conversion failed: %v", err)
	}

	return normalize(result), nil
}

// httpDomain returns baseURL when it parses as an absolute http or
// https URL, and "" otherwise (local file paths have no base).
func httpDomain(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return baseURL
}

// normalize collapses runs of blank lines, strips trailing spaces from
// each line, and guarantees a single trailing newline.
func normalize(markdown string) string {
	markdown = excessBlankLines.ReplaceAllString(markdown, "\n\n")

	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	markdown = strings.Join(lines, "\n")

	return strings.TrimRight(markdown, "\n") + "\n"
}
