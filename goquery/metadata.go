package goquery

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	capture "github.com/kublaios/obsidian-capture"
)

// Ensure MetadataExtractor implements capture.MetadataExtractor.
var _ capture.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor pulls article metadata out of meta tags, structured
// attributes, and common content selectors.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// titleSelectors are tried in order after the meta tag sources.
var titleSelectors = []string{
	"h1",
	".article-title",
	".post-title",
	".entry-title",
	".page-title",
	".story-title",
	".content-title",
	"header h1",
	"article h1",
	".title",
	"title",
}

// controlChars matches C0/C1 control characters removed from metadata text.
var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

// ExtractMetadata parses the document and collects every metadata field it
// can find. Missing fields stay empty; a parse failure yields empty
// metadata rather than an error, because metadata is never required for a
// capture to succeed.
func (m *MetadataExtractor) ExtractMetadata(html string, sourceURL string) (*capture.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &capture.Metadata{}, nil
	}

	return &capture.Metadata{
		Title:        extractTitle(doc),
		Author:       extractAuthor(doc),
		PublishedAt:  extractPublishedAt(doc),
		Description:  extractDescription(doc),
		Keywords:     extractKeywords(doc),
		CanonicalURL: extractCanonicalURL(doc, sourceURL),
		SiteName:     extractSiteName(doc, sourceURL),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	if title := metaContent(doc, "property", "og:title"); title != "" {
		return title
	}
	if title := metaContent(doc, "name", "twitter:title"); title != "" {
		return title
	}
	for _, name := range []string{"title", "headline", "sailthru.title"} {
		if title := metaContent(doc, "name", name); title != "" {
			return title
		}
	}
	if title := metaContent(doc, "property", "article:title"); title != "" {
		return title
	}
	for _, selector := range titleSelectors {
		if title := firstText(doc, selector); title != "" {
			return title
		}
	}
	return ""
}

func extractAuthor(doc *goquery.Document) string {
	for _, selector := range []string{`[rel="author"]`, ".author", ".byline", ".writer"} {
		if author := firstText(doc, selector); author != "" {
			return author
		}
	}
	for _, name := range []string{"author", "article:author"} {
		if author := metaContent(doc, "name", name); author != "" {
			return author
		}
		if author := metaContent(doc, "property", name); author != "" {
			return author
		}
	}
	return ""
}

func extractPublishedAt(doc *goquery.Document) string {
	for _, selector := range []string{"time[datetime]", "[datetime]"} {
		if value, ok := doc.Find(selector).First().Attr("datetime"); ok {
			if formatted := parseDate(value); formatted != "" {
				return formatted
			}
		}
	}
	if value := metaContent(doc, "property", "article:published_time"); value != "" {
		if formatted := parseDate(value); formatted != "" {
			return formatted
		}
	}
	for _, selector := range []string{".published", ".date", ".post-date", ".entry-date"} {
		if text := firstText(doc, selector); text != "" {
			if formatted := parseDate(text); formatted != "" {
				return formatted
			}
		}
	}
	return ""
}

// parseDate normalizes an arbitrary date string to RFC 3339, or returns
// empty when it cannot be parsed.
func parseDate(value string) string {
	parsed, err := dateparse.ParseAny(strings.TrimSpace(value))
	if err != nil {
		return ""
	}
	return parsed.Format(time.RFC3339)
}

func extractDescription(doc *goquery.Document) string {
	if desc := metaContent(doc, "property", "og:description"); desc != "" {
		return desc
	}
	if desc := metaContent(doc, "name", "description"); desc != "" {
		return desc
	}
	return metaContent(doc, "name", "twitter:description")
}

func extractKeywords(doc *goquery.Document) string {
	if keywords := metaContent(doc, "name", "keywords"); keywords != "" {
		return keywords
	}

	var tags []string
	seen := make(map[string]bool)
	doc.Find(".tags a, .tag, .categories a, .category").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= 10 {
			return false
		}
		tag := cleanMetadataText(sel.Text())
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
		return true
	})
	return strings.Join(tags, ", ")
}

func extractCanonicalURL(doc *goquery.Document, sourceURL string) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && href != "" {
		return href
	}
	if u := metaContent(doc, "property", "og:url"); u != "" {
		return u
	}
	return sourceURL
}

func extractSiteName(doc *goquery.Document, sourceURL string) string {
	if name := metaContent(doc, "property", "og:site_name"); name != "" {
		return name
	}
	if name := metaContent(doc, "name", "application-name"); name != "" {
		return name
	}
	if domain := domainOf(sourceURL); domain != "" {
		return strings.TrimPrefix(domain, "www.")
	}
	return ""
}

// metaContent returns the cleaned content attribute of the first matching
// meta tag.
func metaContent(doc *goquery.Document, attr, value string) string {
	content, _ := doc.Find(`meta[` + attr + `="` + value + `"]`).First().Attr("content")
	return cleanMetadataText(content)
}

// firstText returns the cleaned text of the first element matched by the
// selector.
func firstText(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	return cleanMetadataText(sel.Text())
}

// cleanMetadataText collapses whitespace and strips control characters.
func cleanMetadataText(text string) string {
	text = collapseWhitespace(text)
	return controlChars.ReplaceAllString(text, "")
}
