package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "positional", cfg.Summarizer.Type)
	assert.Equal(t, 3, cfg.Summarizer.Sentences)
	assert.Equal(t, ".pdf", cfg.Ingest.Extension)
	assert.False(t, cfg.Ingest.CaseInsensitiveExt)
	assert.False(t, cfg.Ingest.SkipUnreadable)
	assert.Equal(t, "en", cfg.Translator.SourceLang)
	assert.Equal(t, "pt", cfg.Translator.TargetLang)
	assert.Equal(t, 4, cfg.Explain.MaxParallel)
	assert.Equal(t, uint32(3), cfg.Breaker.ConsecutiveFailures)
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
summarizer:
  type: frequency
  sentences: 5
ingest:
  skip_unreadable: true
translator:
  target_lang: es
explain:
  max_parallel: 1
log:
  level: debug
  output: stderr
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "frequency", cfg.Summarizer.Type)
	assert.Equal(t, 5, cfg.Summarizer.Sentences)
	assert.True(t, cfg.Ingest.SkipUnreadable)
	assert.Equal(t, ".pdf", cfg.Ingest.Extension)
	assert.Equal(t, "en", cfg.Translator.SourceLang)
	assert.Equal(t, "es", cfg.Translator.TargetLang)
	assert.Equal(t, 1, cfg.Explain.MaxParallel)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "http://localhost:5005/webhooks/rest/webhook", cfg.Chat.URL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summarizer: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Ingest.CaseInsensitiveExt = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDefault_WritesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "pdfmanager", "config.yaml"), path)
	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, path)
}
