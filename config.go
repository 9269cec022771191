package capture

import "strings"

// DefaultMinContentChars is the minimum extracted text length required for
// a selector to be considered a content match.
const DefaultMinContentChars = 80

// Config holds capture configuration sourced from a YAML file and CLI
// flags.
type Config struct {
	// Selectors is the ordered list of CSS selectors tried for content
	// extraction. At least one is required.
	Selectors []string `yaml:"selectors"`

	// MinContentChars is the minimum text length for a content match.
	MinContentChars int `yaml:"min_content_chars"`

	// Overwrite replaces existing files instead of suffixing.
	Overwrite bool `yaml:"overwrite"`

	// Subfolder is an optional folder beneath the date bucket.
	Subfolder string `yaml:"subfolder"`

	// Tags are added to the note's front matter.
	Tags []string `yaml:"tags"`

	// Summary is an optional summary added to the front matter.
	Summary string `yaml:"summary"`

	// ArchivedAt is an optional archive timestamp for the front matter.
	ArchivedAt string `yaml:"archived_at"`

	// ExclusionSelectors are removed from the document before extraction.
	ExclusionSelectors []string `yaml:"exclusion_selectors"`

	// Vault is the vault root directory.
	Vault string `yaml:"vault"`

	// ExcludeFields removes the named fields from the front matter.
	ExcludeFields []string `yaml:"exclude_fields"`

	// Extra holds unrecognized config keys, passed through to the front
	// matter.
	Extra map[string]any `yaml:"-"`
}

// Validate returns an ECONFIG error if the configuration is unusable.
func (c *Config) Validate() error {
	if len(c.Selectors) == 0 {
		return Errorf(ECONFIG, "at least one selector must be specified")
	}
	for _, selector := range c.Selectors {
		if strings.TrimSpace(selector) == "" {
			return Errorf(ECONFIG, "invalid selector: %q", selector)
		}
	}
	if c.MinContentChars < 1 {
		return Errorf(ECONFIG, "min_content_chars must be at least 1")
	}
	if c.Subfolder != "" {
		normalized := strings.ReplaceAll(c.Subfolder, "\\", "/")
		if strings.Contains(normalized, "..") {
			return Errorf(ECONFIG, "invalid subfolder path: %q", c.Subfolder)
		}
		for _, part := range strings.Split(normalized, "/") {
			if strings.TrimSpace(part) == "" || strings.HasPrefix(part, ".") {
				return Errorf(ECONFIG, "invalid subfolder path: %q", c.Subfolder)
			}
		}
	}
	return nil
}

// DefaultConfig returns the built-in selector cascade used when no config
// file is present.
func DefaultConfig() *Config {
	return &Config{
		Selectors: []string{
			"article",
			"main",
			`[role="main"]`,
			".content",
			".post-content",
			".entry-content",
			".article-content",
			"body",
		},
		MinContentChars: DefaultMinContentChars,
	}
}
