package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	keywordDelimiters = regexp.MustCompile(`[,;|]`)
	fileExtension     = regexp.MustCompile(`\.(html|htm|php|asp|aspx|jsp)$`)
	tagUnsafe         = regexp.MustCompile(`[^\w\s-]`)
	tagSeparators     = regexp.MustCompile(`[\s-]+`)
	segmentSeparators = regexp.MustCompile(`[-_]+`)
	digitsOnly        = regexp.MustCompile(`^\d+$`)
)

// tagElementSelectors locate tag/category elements in page content.
const tagElementSelectors = ".tags a, .tag, .categories a, .category, .post-tags a, .article-tags a"

// GenerateTags derives Obsidian-style "#tag" strings for the note. SEO
// meta keywords win when present, then tag/category elements in the page;
// with neither, tags come from the words of the URL's last path segment.
// Tags shorter than three characters or consisting only of digits are
// dropped, and duplicates collapse case-insensitively.
func (m *MetadataExtractor) GenerateTags(html string, sourceURL string) []string {
	var raw []string

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		raw = extractSEOTags(doc)
	}
	if len(raw) == 0 {
		raw = extractTagsFromURL(sourceURL)
	}

	var tags []string
	seen := make(map[string]bool)
	for _, tag := range raw {
		clean := cleanTagText(tag)
		if len(clean) <= 2 {
			continue
		}
		obsidian := "#" + clean
		key := strings.ToLower(obsidian)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, obsidian)
	}
	return tags
}

// extractSEOTags reads tags from meta keywords or tag/category elements.
func extractSEOTags(doc *goquery.Document) []string {
	var tags []string

	if keywords, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content"); ok {
		for _, keyword := range keywordDelimiters.Split(keywords, -1) {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				tags = append(tags, keyword)
			}
		}
	}

	if len(tags) == 0 {
		doc.Find(tagElementSelectors).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if i >= 10 {
				return false
			}
			if text := collapseWhitespace(sel.Text()); text != "" {
				tags = append(tags, text)
			}
			return true
		})
	}

	return tags
}

// extractTagsFromURL splits the URL's last path segment into candidate
// tags. Example: example.com/p/articles/how-to-encode-string yields
// "how", "encode", "string" after filtering.
func extractTagsFromURL(sourceURL string) []string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return nil
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return nil
	}

	segments := strings.Split(path, "/")
	last := fileExtension.ReplaceAllString(segments[len(segments)-1], "")
	if last == "" {
		return nil
	}

	var tags []string
	for _, word := range segmentSeparators.Split(last, -1) {
		if word != "" {
			tags = append(tags, word)
		}
	}
	return tags
}

// cleanTagText normalizes raw tag text into an Obsidian tag body:
// lowercase, alphanumerics/dashes only, no leading or trailing dashes, and
// never digits-only.
func cleanTagText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = tagUnsafe.ReplaceAllString(text, "")
	text = tagSeparators.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")
	if digitsOnly.MatchString(text) {
		return ""
	}
	return text
}

// domainOf returns the host of a URL, or empty for unparseable input.
func domainOf(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return ""
	}
	return u.Host
}
