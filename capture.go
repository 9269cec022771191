// Package capture provides a web-page-to-Obsidian-note capture pipeline.
// It fetches a URL or local HTML file, applies user-configured exclusion
// selectors to the parsed document, extracts the primary content region,
// converts it to Markdown, and writes it to a vault as a note with YAML
// front matter.
//
// This package contains domain types, interfaces, and the orchestrating
// Capturer following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency
// (e.g., goquery/, htmltomarkdown/, http/, fs/, yaml/).
package capture
