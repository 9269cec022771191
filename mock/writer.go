package mock

import capture "github.com/kublaios/obsidian-capture"

var _ capture.NoteWriter = (*NoteWriter)(nil)

// NoteWriter is a mock implementation of capture.NoteWriter.
type NoteWriter struct {
	WriteNoteFn   func(note *capture.Note) (*capture.WriteResult, error)
	ProposePathFn func(note *capture.Note) (string, error)
}

func (w *NoteWriter) WriteNote(note *capture.Note) (*capture.WriteResult, error) {
	return w.WriteNoteFn(note)
}

func (w *NoteWriter) ProposePath(note *capture.Note) (string, error) {
	return w.ProposePathFn(note)
}
