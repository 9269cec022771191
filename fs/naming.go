package fs

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// maxFilenameLength bounds the slug portion of generated note filenames.
const maxFilenameLength = 80

var unsafeDirChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// NoteFilename derives a vault-safe Markdown filename from the note
// title, falling back to the source URL when the title yields nothing.
// Example: "Hello, World!" → hello-world.md
func NoteFilename(title, sourceURL string) string {
	s := slug.Make(title)
	if len(s) > maxFilenameLength {
		s = s[:maxFilenameLength]
	}
	s = strings.Trim(s, "-_")
	if s != "" {
		return s + ".md"
	}
	return filenameFromURL(sourceURL)
}

// filenameFromURL derives a filename from the URL's last path segment,
// then its domain, then the generic fallback "article".
func filenameFromURL(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err == nil {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if last := slug.Make(segments[len(segments)-1]); last != "" {
			if len(last) > maxFilenameLength {
				last = last[:maxFilenameLength]
			}
			return strings.Trim(last, "-_") + ".md"
		}

		host := strings.TrimPrefix(u.Hostname(), "www.")
		if d := slug.Make(host); d != "" {
			if len(d) > 20 {
				d = d[:20]
			}
			return strings.Trim(d, "-_") + ".md"
		}
	}
	return "article.md"
}

// CleanDirectoryName strips characters that are unsafe in directory
// names across platforms and trims surrounding whitespace and dots.
func CleanDirectoryName(name string) string {
	name = unsafeDirChars.ReplaceAllString(name, "")
	return strings.Trim(name, " .")
}
