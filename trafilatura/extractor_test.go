package trafilatura_test

import (
	"strings"
	"testing"

	capture "github.com/kublaios/obsidian-capture"
	"github.com/kublaios/obsidian-capture/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements capture.Extractor at compile time.
var _ capture.Extractor = (*trafilatura.Extractor)(nil)

func articlePage() string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>A Long Read</title></head><body>`)
	b.WriteString(`<nav>Home | About | Contact</nav><main><h1>A Long Read</h1>`)
	for i := 0; i < 8; i++ {
		b.WriteString(`<p>Trafilatura weighs text density against boilerplate signals, so the
page body needs several substantial paragraphs of plain prose for the
extraction to find the main region reliably.</p>`)
	}
	b.WriteString(`</main><footer>Copyright</footer></body></html>`)
	return b.String()
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the main content", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(articlePage(), nil, 80)

		require.NoError(t, err)
		assert.Equal(t, "trafilatura", result.Selector)
		assert.Contains(t, result.TextContent, "Trafilatura weighs text density")
		assert.NotEmpty(t, result.HTMLFragment)
		assert.GreaterOrEqual(t, result.CharacterCount, 80)
	})

	t.Run("rejects content below the minimum length", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract(articlePage(), nil, 100_000)

		require.Error(t, err)
		assert.Equal(t, capture.ENOSELECTORMATCH, capture.ErrorCode(err))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("", nil, 80)

		require.Error(t, err)
		assert.Equal(t, capture.EINVALID, capture.ErrorCode(err))
	})
}
