package fs_test

import (
	"strings"
	"testing"

	"github.com/kublaios/obsidian-capture/fs"
	"github.com/stretchr/testify/assert"
)

func TestNoteFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		url   string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello, World!",
			url:   "https://example.com/post",
			want:  "hello-world.md",
		},
		{
			name:  "unicode title is transliterated",
			title: "Caffè è buono",
			url:   "https://example.com/post",
			want:  "caffe-e-buono.md",
		},
		{
			name:  "empty title falls back to URL path",
			title: "",
			url:   "https://example.com/articles/go-concurrency",
			want:  "go-concurrency.md",
		},
		{
			name:  "symbol-only title falls back to URL path",
			title: "!!!",
			url:   "https://example.com/articles/go-concurrency",
			want:  "go-concurrency.md",
		},
		{
			name:  "no path falls back to domain",
			title: "",
			url:   "https://www.example.com/",
			want:  "example-com.md",
		},
		{
			name:  "nothing usable falls back to article",
			title: "",
			url:   "",
			want:  "article.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.NoteFilename(tt.title, tt.url))
		})
	}

	t.Run("long titles are truncated", func(t *testing.T) {
		t.Parallel()

		got := fs.NoteFilename(strings.Repeat("word ", 40), "https://example.com/post")
		assert.LessOrEqual(t, len(got), 80+len(".md"))
		assert.True(t, strings.HasSuffix(got, ".md"))
		assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, ".md"), "-"))
	})
}

func TestCleanDirectoryName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name", in: "reading", want: "reading"},
		{name: "strips unsafe characters", in: `art:icl"es`, want: "articles"},
		{name: "strips path separators", in: "a/b\\c", want: "abc"},
		{name: "trims dots and spaces", in: " .notes. ", want: "notes"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.CleanDirectoryName(tt.in))
		})
	}
}
