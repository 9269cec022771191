package readability_test

import (
	"strings"
	"testing"

	capture "github.com/kublaios/obsidian-capture"
	"github.com/kublaios/obsidian-capture/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements capture.Extractor at compile time.
var _ capture.Extractor = (*readability.Extractor)(nil)

func articlePage() string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>A Long Read</title></head><body>`)
	b.WriteString(`<nav>Home | About | Contact</nav><article><h1>A Long Read</h1>`)
	for i := 0; i < 8; i++ {
		b.WriteString(`<p>Readability scores paragraphs by length and link density, so the
article body needs several substantial paragraphs of plain prose for the
heuristic to settle on the right region of the page.</p>`)
	}
	b.WriteString(`</article><footer>Copyright</footer></body></html>`)
	return b.String()
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the article body", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		result, err := ext.Extract(articlePage(), nil, 80)

		require.NoError(t, err)
		assert.Equal(t, "readability", result.Selector)
		assert.Contains(t, result.TextContent, "Readability scores paragraphs")
		assert.NotContains(t, result.TextContent, "Home | About")
		assert.GreaterOrEqual(t, result.CharacterCount, 80)
	})

	t.Run("rejects content below the minimum length", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract(articlePage(), nil, 100_000)

		require.Error(t, err)
		assert.Equal(t, capture.ENOSELECTORMATCH, capture.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("", nil, 80)

		require.Error(t, err)
		assert.Equal(t, capture.EINVALID, capture.ErrorCode(err))
	})
}
