package yaml

import (
	"sort"
	"strings"

	capture "github.com/kublaios/obsidian-capture"
	"gopkg.in/yaml.v3"
)

// Ensure Marshaler implements capture.FrontMatterMarshaler at compile time.
var _ capture.FrontMatterMarshaler = (*Marshaler)(nil)

// Marshaler renders front matter fields as a fenced YAML block with
// deterministic key order.
type Marshaler struct{}

// NewMarshaler creates a new Marshaler.
func NewMarshaler() *Marshaler {
	return &Marshaler{}
}

// MarshalFrontMatter serializes fields as "---\n...\n---\n\n". Nil
// values and empty strings are dropped; keys are sorted so repeated
// captures of the same page produce identical files.
func (m *Marshaler) MarshalFrontMatter(fields map[string]any) (string, error) {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(fields[key]); err != nil {
			return "", capture.Errorf(capture.EWRITE, "encoding front matter field %q: %v", key, err)
		}
		doc.Content = append(doc.Content, keyNode, valueNode)
	}

	var b strings.Builder
	b.WriteString("---\n")
	if len(keys) > 0 {
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", capture.Errorf(capture.EWRITE, "encoding front matter: %v", err)
		}
		b.Write(out)
	}
	b.WriteString("---\n\n")
	return b.String(), nil
}
