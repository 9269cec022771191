package main

import (
	"encoding/json"
	"fmt"
	"io"

	capture "github.com/kublaios/obsidian-capture"
)

// Reporter renders capture outcomes to stdout in text or JSON form.
type Reporter struct {
	out    io.Writer
	format string
}

// NewReporter creates a Reporter. format is "text" or "json".
func NewReporter(out io.Writer, format string) *Reporter {
	return &Reporter{out: out, format: format}
}

type jsonReport struct {
	Status            string         `json:"status"`
	URL               string         `json:"url"`
	FilePath          string         `json:"file_path,omitempty"`
	ProposedFilename  string         `json:"proposed_filename,omitempty"`
	Selector          string         `json:"selector,omitempty"`
	ExtractedChars    int            `json:"extracted_chars,omitempty"`
	MarkdownChars     int            `json:"markdown_chars,omitempty"`
	ElapsedMS         int64          `json:"elapsed_ms"`
	Unchanged         bool           `json:"unchanged,omitempty"`
	ExclusionsApplied int            `json:"exclusions_applied,omitempty"`
	ElementsExcluded  int            `json:"elements_excluded,omitempty"`
	FrontMatter       map[string]any `json:"front_matter,omitempty"`
	Error             string         `json:"error,omitempty"`
	ErrorCode         string         `json:"error_code,omitempty"`
}

// Success renders a completed capture or dry-run preview.
func (r *Reporter) Success(result *capture.Result) error {
	if r.format == "json" {
		status := "success"
		if result.DryRun {
			status = "dry-run"
		}
		return r.writeJSON(&jsonReport{
			Status:            status,
			URL:               result.URL,
			FilePath:          result.FilePath,
			ProposedFilename:  result.ProposedFilename,
			Selector:          result.SelectorUsed,
			ExtractedChars:    result.ExtractedChars,
			MarkdownChars:     result.MarkdownChars,
			ElapsedMS:         result.ElapsedMS,
			Unchanged:         result.Unchanged,
			ExclusionsApplied: result.ExclusionsApplied,
			ElementsExcluded:  result.ElementsExcluded,
			FrontMatter:       result.FrontMatter,
		})
	}

	if result.DryRun {
		fmt.Fprintf(r.out, "Dry run: %s\n", result.URL)
		fmt.Fprintf(r.out, "  Would write: %s\n", result.ProposedFilename)
	} else if result.Unchanged {
		fmt.Fprintf(r.out, "Unchanged: %s\n", result.URL)
		fmt.Fprintf(r.out, "  File: %s\n", result.FilePath)
	} else {
		fmt.Fprintf(r.out, "Captured: %s\n", result.URL)
		fmt.Fprintf(r.out, "  File: %s\n", result.FilePath)
	}
	fmt.Fprintf(r.out, "  Selector: %s\n", result.SelectorUsed)
	fmt.Fprintf(r.out, "  Characters: %d extracted, %d markdown\n", result.ExtractedChars, result.MarkdownChars)
	if result.ExclusionsApplied > 0 {
		fmt.Fprintf(r.out, "  Exclusions: %d selectors removed %d elements\n",
			result.ExclusionsApplied, result.ElementsExcluded)
	}
	fmt.Fprintf(r.out, "  Time: %dms\n", result.ElapsedMS)
	return nil
}

// Failure renders a capture error.
func (r *Reporter) Failure(url string, err error) error {
	if r.format == "json" {
		return r.writeJSON(&jsonReport{
			Status:    "error",
			URL:       url,
			Error:     capture.ErrorMessage(err),
			ErrorCode: capture.ErrorCode(err),
		})
	}

	fmt.Fprintf(r.out, "Failed: %s\n", url)
	fmt.Fprintf(r.out, "  Error: %s\n", capture.ErrorMessage(err))
	return nil
}

func (r *Reporter) writeJSON(report *jsonReport) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
