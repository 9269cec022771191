package capture

import (
	"strings"
	"time"
)

// FrontMatterMarshaler serializes front matter fields into the YAML
// block that opens an Obsidian note.
type FrontMatterMarshaler interface {
	MarshalFrontMatter(fields map[string]any) (string, error)
}

// BuildFrontMatter assembles the front matter fields for a captured note:
// core capture fields, extracted metadata, config extras, merged tags, and
// the optional summary/archived_at fields, with exclude_fields filtering
// applied last.
func BuildFrontMatter(meta *Metadata, cfg *Config, url, selector string, retrievedAt time.Time, generatedTags []string) map[string]any {
	front := map[string]any{
		"source":       url,
		"selector":     selector,
		"retrieved_at": retrievedAt.Format(time.RFC3339),
	}

	if meta != nil {
		for key, value := range meta.Fields() {
			front[key] = value
		}
	}

	if cfg != nil {
		for key, value := range cfg.Extra {
			if value != nil {
				front[key] = value
			}
		}
	}

	tags := mergeTags(front["tags"], cfg, generatedTags)
	if len(tags) > 0 {
		front["tags"] = tags
	}

	if cfg != nil {
		if cfg.Summary != "" {
			front["summary"] = cfg.Summary
		}
		if cfg.ArchivedAt != "" {
			front["archived_at"] = cfg.ArchivedAt
		}
		for _, field := range cfg.ExcludeFields {
			delete(front, field)
		}
	}

	return front
}

// mergeTags combines any tags already present in the front matter with the
// config tags and the generated tags, deduplicating case-insensitively
// while preserving first-seen order. Leading "#" markers are stripped;
// front matter tags carry the bare name.
func mergeTags(existing any, cfg *Config, generated []string) []string {
	var tags []string
	seen := make(map[string]bool)

	add := func(tag string) {
		tag = strings.TrimPrefix(tag, "#")
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			return
		}
		seen[key] = true
		tags = append(tags, tag)
	}

	switch v := existing.(type) {
	case string:
		add(v)
	case []string:
		for _, tag := range v {
			add(tag)
		}
	case []any:
		for _, item := range v {
			if tag, ok := item.(string); ok {
				add(tag)
			}
		}
	}

	if cfg != nil {
		for _, tag := range cfg.Tags {
			add(tag)
		}
	}
	for _, tag := range generated {
		add(tag)
	}

	return tags
}
