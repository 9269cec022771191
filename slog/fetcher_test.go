package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	capture "github.com/kublaios/obsidian-capture"
	"github.com/kublaios/obsidian-capture/mock"
	capslog "github.com/kublaios/obsidian-capture/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, urlOrPath string) (*capture.Source, error) {
				return &capture.Source{
					URL:          urlOrPath,
					Content:      "<html>content</html>",
					Encoding:     "utf-8",
					RawSizeBytes: 20,
				}, nil
			},
		}

		fetcher := capslog.NewLoggingFetcher(inner, logger)
		src, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", src.Content)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "encoding=utf-8")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, urlOrPath string) (*capture.Source, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := capslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/post")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
