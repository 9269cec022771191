package goquery_test

import (
	"testing"

	capture "github.com/kublaios/obsidian-capture"
	"github.com/kublaios/obsidian-capture/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetadataExtractor implements capture.MetadataExtractor.
var _ capture.MetadataExtractor = (*goquery.MetadataExtractor)(nil)

func extract(t *testing.T, html, sourceURL string) *capture.Metadata {
	t.Helper()
	meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html, sourceURL)
	require.NoError(t, err)
	return meta
}

func TestMetadataExtractor_Title(t *testing.T) {
	t.Parallel()

	t.Run("og:title wins over the title tag", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><head>
<meta property="og:title" content="OG Title">
<title>Tag Title</title>
</head><body><h1>Heading Title</h1></body></html>`, "https://example.com")

		assert.Equal(t, "OG Title", meta.Title)
	})

	t.Run("falls back to twitter:title", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><head>
<meta name="twitter:title" content="Twitter Title">
<title>Tag Title</title>
</head></html>`, "https://example.com")

		assert.Equal(t, "Twitter Title", meta.Title)
	})

	t.Run("falls back to the first h1", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><body><h1>  Heading
   Title </h1></body></html>`, "https://example.com")

		assert.Equal(t, "Heading Title", meta.Title)
	})

	t.Run("empty when nothing is present", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><body><p>no title anywhere</p></body></html>`, "https://example.com")

		assert.Empty(t, meta.Title)
	})
}

func TestMetadataExtractor_Author(t *testing.T) {
	t.Parallel()

	t.Run("rel author element wins", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><body>
<a rel="author">Jo Writer</a>
<meta name="author" content="Meta Author">
</body></html>`, "https://example.com")

		assert.Equal(t, "Jo Writer", meta.Author)
	})

	t.Run("falls back to the author meta tag", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><head><meta name="author" content="Meta Author"></head></html>`, "https://example.com")

		assert.Equal(t, "Meta Author", meta.Author)
	})
}

func TestMetadataExtractor_PublishedAt(t *testing.T) {
	t.Parallel()

	t.Run("reads the time element datetime attribute", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><body><time datetime="2026-03-15T08:00:00Z">March 15</time></body></html>`, "https://example.com")

		assert.Equal(t, "2026-03-15T08:00:00Z", meta.PublishedAt)
	})

	t.Run("normalizes loose date text", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><body><span class="published">March 15, 2026</span></body></html>`, "https://example.com")

		assert.Contains(t, meta.PublishedAt, "2026-03-15")
	})

	t.Run("empty for unparseable dates", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><body><span class="published">sometime last spring</span></body></html>`, "https://example.com")

		assert.Empty(t, meta.PublishedAt)
	})
}

func TestMetadataExtractor_DescriptionAndKeywords(t *testing.T) {
	t.Parallel()

	meta := extract(t, `<html><head>
<meta name="description" content="A page about things.">
<meta name="keywords" content="go, testing, html">
</head></html>`, "https://example.com")

	assert.Equal(t, "A page about things.", meta.Description)
	assert.Equal(t, "go, testing, html", meta.Keywords)
}

func TestMetadataExtractor_CanonicalURL(t *testing.T) {
	t.Parallel()

	t.Run("link rel canonical wins", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><head>
<link rel="canonical" href="https://example.com/canonical">
<meta property="og:url" content="https://example.com/og">
</head></html>`, "https://example.com/fetched")

		assert.Equal(t, "https://example.com/canonical", meta.CanonicalURL)
	})

	t.Run("falls back to the source URL", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html></html>`, "https://example.com/fetched")

		assert.Equal(t, "https://example.com/fetched", meta.CanonicalURL)
	})
}

func TestMetadataExtractor_SiteName(t *testing.T) {
	t.Parallel()

	t.Run("og:site_name wins", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html><head><meta property="og:site_name" content="Example Blog"></head></html>`, "https://www.example.com/post")

		assert.Equal(t, "Example Blog", meta.SiteName)
	})

	t.Run("falls back to the domain without www", func(t *testing.T) {
		t.Parallel()

		meta := extract(t, `<html></html>`, "https://www.example.com/post")

		assert.Equal(t, "example.com", meta.SiteName)
	})
}
