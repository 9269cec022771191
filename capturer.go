package capture

import (
	"context"
	"path/filepath"
	"time"
)

// Request holds the parameters for one capture operation.
type Request struct {
	// URLOrPath is the HTTP(S) URL or local HTML file path to capture.
	URLOrPath string

	// Config controls selectors, exclusions, and front matter fields.
	Config *Config

	// DryRun previews the capture without writing a file.
	DryRun bool
}

// Result describes a completed capture (or a dry-run preview).
type Result struct {
	URL              string
	FilePath         string
	ProposedFilename string
	DryRun           bool
	SelectorUsed     string
	ExtractedChars   int
	MarkdownChars    int
	ElapsedMS        int64
	FrontMatter      map[string]any
	Metadata         *Metadata
	RetrievedAt      time.Time
	ContentHash      string
	Unchanged        bool

	// Exclusion reporting fields. ExclusionMS is meaningful only when
	// ExclusionsApplied is non-zero.
	ExclusionsApplied int
	ElementsExcluded  int
	ExclusionMS       int64
}

// Capturer orchestrates the capture pipeline: fetch, exclusions, content
// extraction, metadata extraction, markdown conversion, and the vault
// write. All collaborators are injected.
type Capturer struct {
	Fetcher   Fetcher
	Excluder  Excluder
	Extractor Extractor
	Metadata  MetadataExtractor
	Converter Converter
	Writer    NoteWriter

	// Now is the clock used for timestamps; defaults to time.Now.
	Now func() time.Time
}

func (c *Capturer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Capture runs the full pipeline for one document. Exclusion is strictly
// best-effort: any failure of the exclusion step (including the selector
// cap) leaves the capture running against the document as fetched. All
// other step failures propagate with their error codes.
func (c *Capturer) Capture(ctx context.Context, req *Request) (*Result, error) {
	start := c.now()

	cfg := req.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, err := c.Fetcher.Fetch(ctx, req.URLOrPath)
	if err != nil {
		return nil, err
	}

	html := source.Content
	var exclusionsApplied, elementsExcluded int
	var exclusionMS int64

	if len(cfg.ExclusionSelectors) > 0 && c.Excluder != nil {
		began := c.now()
		modified, exclusion, err := c.Excluder.Exclude(html, cfg.ExclusionSelectors)
		exclusionMS = c.now().Sub(began).Milliseconds()
		if err == nil {
			html = modified
			exclusionsApplied = exclusion.Summary.SelectorsProcessed
			elementsExcluded = exclusion.Summary.ElementsRemoved
		}
		// On error the unmodified document is used; the excluder's logging
		// decorator has already reported the failure.
	}

	extraction, err := c.Extractor.Extract(html, cfg.Selectors, cfg.MinContentChars)
	if err != nil {
		return nil, err
	}

	// Metadata always comes from the document as fetched, so exclusion
	// rules cannot strip meta tags out of the front matter.
	meta, err := c.Metadata.ExtractMetadata(source.Content, req.URLOrPath)
	if err != nil || meta == nil {
		meta = &Metadata{}
	}

	markdown, err := c.Converter.Convert(extraction.HTMLFragment, req.URLOrPath)
	if err != nil {
		return nil, err
	}

	retrievedAt := c.now()
	tags := c.Metadata.GenerateTags(source.Content, req.URLOrPath)
	front := BuildFrontMatter(meta, cfg, req.URLOrPath, extraction.Selector, retrievedAt, tags)

	note := &Note{
		Title:       meta.Title,
		URL:         req.URLOrPath,
		FrontMatter: front,
		Markdown:    markdown,
		Subfolder:   cfg.Subfolder,
		Overwrite:   cfg.Overwrite,
		RetrievedAt: retrievedAt,
	}

	result := &Result{
		URL:               req.URLOrPath,
		SelectorUsed:      extraction.Selector,
		ExtractedChars:    extraction.CharacterCount,
		MarkdownChars:     len(markdown),
		FrontMatter:       front,
		Metadata:          meta,
		RetrievedAt:       retrievedAt,
		ExclusionsApplied: exclusionsApplied,
		ElementsExcluded:  elementsExcluded,
		ExclusionMS:       exclusionMS,
	}

	if req.DryRun {
		path, err := c.Writer.ProposePath(note)
		if err != nil {
			return nil, err
		}
		result.DryRun = true
		result.ProposedFilename = filepath.Base(path)
		result.ElapsedMS = c.now().Sub(start).Milliseconds()
		return result, nil
	}

	written, err := c.Writer.WriteNote(note)
	if err != nil {
		return nil, err
	}

	result.FilePath = written.Path
	result.ContentHash = written.ContentHash
	result.Unchanged = written.Unchanged
	result.ElapsedMS = c.now().Sub(start).Milliseconds()
	return result, nil
}
