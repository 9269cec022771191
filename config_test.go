package capture_test

import (
	"testing"

	capture "github.com/kublaios/obsidian-capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *capture.Config {
		return &capture.Config{
			Selectors:       []string{"article", "body"},
			MinContentChars: 80,
		}
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, valid().Validate())
	})

	t.Run("requires at least one selector", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Selectors = nil

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, capture.ECONFIG, capture.ErrorCode(err))
	})

	t.Run("rejects blank selectors", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Selectors = []string{"article", "   "}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, capture.ECONFIG, capture.ErrorCode(err))
	})

	t.Run("requires a positive minimum content length", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.MinContentChars = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, capture.ECONFIG, capture.ErrorCode(err))
	})

	t.Run("accepts nested subfolders", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Subfolder = "reading/articles"

		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects traversal in subfolders", func(t *testing.T) {
		t.Parallel()

		for _, sub := range []string{"..", "../escape", "a/../b", `..\escape`} {
			cfg := valid()
			cfg.Subfolder = sub

			err := cfg.Validate()
			require.Error(t, err, "subfolder %q", sub)
			assert.Equal(t, capture.ECONFIG, capture.ErrorCode(err))
		}
	})

	t.Run("rejects hidden subfolder components", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Subfolder = ".obsidian"

		err := cfg.Validate()
		require.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := capture.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "article", cfg.Selectors[0])
	assert.Equal(t, "body", cfg.Selectors[len(cfg.Selectors)-1])
	assert.Equal(t, capture.DefaultMinContentChars, cfg.MinContentChars)
	assert.Empty(t, cfg.ExclusionSelectors)
}
