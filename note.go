package capture

import "time"

// Note is a markdown note destined for the vault.
type Note struct {
	// Title is the article title used to derive the filename (may be empty).
	Title string

	// URL is the source URL or path, used for filename fallbacks.
	URL string

	// FrontMatter holds the YAML front matter fields.
	FrontMatter map[string]any

	// Markdown is the converted note body.
	Markdown string

	// Subfolder is an optional folder beneath the date bucket.
	Subfolder string

	// Overwrite replaces an existing file instead of suffixing.
	Overwrite bool

	// RetrievedAt determines the date bucket directory.
	RetrievedAt time.Time
}

// WriteResult describes where a note landed.
type WriteResult struct {
	// Path is the absolute path of the written file.
	Path string

	// ContentHash is a hex digest of the serialized note.
	ContentHash string

	// Unchanged is true when an identical note already existed at Path and
	// no write was performed.
	Unchanged bool
}

// NoteWriter persists notes into a vault.
type NoteWriter interface {
	// WriteNote serializes the note (front matter + body) and writes it
	// under vault/YYYY-MM[/subfolder]/, suffixing the filename on
	// collisions unless the note requests overwrite. Returns an EWRITE
	// error on filesystem failures.
	WriteNote(note *Note) (*WriteResult, error)

	// ProposePath returns the path WriteNote would use, without writing.
	ProposePath(note *Note) (string, error)
}
