// Package yaml loads capture configuration and renders note front
// matter with gopkg.in/yaml.v3.
package yaml

import (
	"os"

	capture "github.com/kublaios/obsidian-capture"
	"gopkg.in/yaml.v3"
)

// knownConfigKeys are the config keys bound to Config struct fields.
// Everything else in the file flows into the note front matter.
var knownConfigKeys = map[string]bool{
	"selectors":           true,
	"min_content_chars":   true,
	"overwrite":           true,
	"subfolder":           true,
	"tags":                true,
	"summary":             true,
	"archived_at":         true,
	"exclusion_selectors": true,
	"vault":               true,
	"exclude_fields":      true,
}

// LoadConfig reads and validates a YAML config file. Unknown top-level
// keys are collected into Config.Extra for front matter passthrough.
func LoadConfig(path string) (*capture.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, capture.Errorf(capture.ECONFIG, "reading config %s: %v", path, err)
	}

	var cfg capture.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, capture.Errorf(capture.ECONFIG, "parsing config %s: %v", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, capture.Errorf(capture.ECONFIG, "config root must be a mapping in %s", path)
	}
	for key, value := range raw {
		if knownConfigKeys[key] {
			continue
		}
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}
		cfg.Extra[key] = value
	}

	if cfg.MinContentChars == 0 {
		cfg.MinContentChars = capture.DefaultMinContentChars
	}
	if len(cfg.Selectors) == 0 {
		cfg.Selectors = capture.DefaultConfig().Selectors
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
