// Package fs writes captured notes into an Obsidian vault on disk.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	capture "github.com/kublaios/obsidian-capture"
)

// maxCollisionSuffix bounds the numeric suffixes tried when a filename
// already exists in the target directory.
const maxCollisionSuffix = 1000

// Ensure Writer implements capture.NoteWriter at compile time.
var _ capture.NoteWriter = (*Writer)(nil)

// Writer stores notes under vault/YYYY-MM/[subfolder]/ with Markdown
// filenames derived from the note title.
type Writer struct {
	vaultDir    string
	frontMatter capture.FrontMatterMarshaler
}

// NewWriter creates a Writer rooted at vaultDir.
func NewWriter(vaultDir string, frontMatter capture.FrontMatterMarshaler) *Writer {
	return &Writer{vaultDir: vaultDir, frontMatter: frontMatter}
}

// ValidateVault checks that dir exists, is a directory, and is writable.
func ValidateVault(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return capture.Errorf(capture.ECONFIG, "vault directory does not exist: %s", dir)
		}
		return capture.Errorf(capture.ECONFIG, "checking vault directory %s: %v", dir, err)
	}
	if !info.IsDir() {
		return capture.Errorf(capture.ECONFIG, "vault path is not a directory: %s", dir)
	}

	probe := filepath.Join(dir, ".obsidian-capture-probe")
	f, err := os.Create(probe)
	if err != nil {
		return capture.Errorf(capture.ECONFIG, "vault directory is not writable: %s", dir)
	}
	f.Close()
	os.Remove(probe)
	return nil
}

// WriteNote renders the note and writes it into the vault. When an
// identical note already exists at the target path the file is left
// alone and the result is marked Unchanged. A different existing file
// gets a numeric suffix unless the note requests overwriting.
func (w *Writer) WriteNote(note *capture.Note) (*capture.WriteResult, error) {
	content, err := w.render(note)
	if err != nil {
		return nil, err
	}

	dir := w.targetDir(note)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, capture.Errorf(capture.EWRITE, "creating %s: %v", dir, err)
	}

	path := filepath.Join(dir, NoteFilename(note.Title, note.URL))
	hash := fmt.Sprintf("%016x", xxhash.Sum64String(content))

	if !note.Overwrite {
		free, match, err := w.resolveCollision(path, content)
		if err != nil {
			return nil, err
		}
		if match != "" {
			// Identical note already on disk.
			return &capture.WriteResult{
				Path:        match,
				ContentHash: hash,
				Unchanged:   true,
			}, nil
		}
		path = free
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, capture.Errorf(capture.EWRITE, "writing %s: %v", path, err)
	}

	return &capture.WriteResult{Path: path, ContentHash: hash}, nil
}

// ProposePath returns the path WriteNote would use, without touching
// the filesystem beyond collision probing.
func (w *Writer) ProposePath(note *capture.Note) (string, error) {
	dir := w.targetDir(note)
	path := filepath.Join(dir, NoteFilename(note.Title, note.URL))
	if note.Overwrite {
		return path, nil
	}

	free, _, err := w.resolveCollision(path, "")
	if err != nil {
		return "", err
	}
	return free, nil
}

func (w *Writer) render(note *capture.Note) (string, error) {
	front, err := w.frontMatter.MarshalFrontMatter(note.FrontMatter)
	if err != nil {
		return "", capture.Errorf(capture.EWRITE, "rendering front matter: %v", err)
	}
	return front + note.Markdown, nil
}

func (w *Writer) targetDir(note *capture.Note) string {
	dir := filepath.Join(w.vaultDir, note.RetrievedAt.Format("2006-01"))
	if sub := CleanDirectoryName(note.Subfolder); sub != "" {
		dir = filepath.Join(dir, sub)
	}
	return dir
}

// resolveCollision finds a free path by appending -1, -2, ... to the
// base name. When content matches an existing candidate byte for byte
// the matching path is returned instead and nothing needs writing.
func (w *Writer) resolveCollision(path, content string) (free, match string, err error) {
	base := strings.TrimSuffix(path, ".md")

	candidate := path
	for i := 0; i <= maxCollisionSuffix; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d.md", base, i)
		}

		existing, err := os.ReadFile(candidate)
		if os.IsNotExist(err) {
			return candidate, "", nil
		}
		if err != nil {
			return "", "", capture.Errorf(capture.EWRITE, "checking %s: %v", candidate, err)
		}
		if content != "" && string(existing) == content {
			return "", candidate, nil
		}
	}

	return "", "", capture.Errorf(capture.EWRITE,
		"unable to find a free filename for %s after %d attempts", path, maxCollisionSuffix)
}
