package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Crawl.MaxPages)
	assert.Empty(t, cfg.AI.APIKey)
	assert.False(t, cfg.AIEnabled())
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Crawl.MaxPages, cfg.Crawl.MaxPages)
}

func TestLoadMissingFileFails(t *testing.T) {
	// A path the caller asked for must not silently degrade to defaults.
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
fetch:
  timeout_seconds: 30
crawl:
  max_pages: 8
ai:
  model: gemini-2.5-pro
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 8, cfg.Crawl.MaxPages)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("WOOSTACK_API_KEY", "from-env")
	t.Setenv("GEMINI_API_KEY", "shadowed")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.True(t, cfg.AIEnabled())
}

func TestGeminiEnvFallback(t *testing.T) {
	t.Setenv("WOOSTACK_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.AI.APIKey)
}

func TestTimeoutFallbacks(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 60*time.Second, cfg.AITimeout())
}
