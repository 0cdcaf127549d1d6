package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mundap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
ai:
  embedding_host: http://embed.internal:8080/v1
  chat_host: http://chat.internal:8080/v1
  embedding_model: bge-m3
  chat_model: qwen2.5:7b
  token: secret
data:
  docs_dir: /srv/mundap/docs
  metadata_file: /srv/mundap/data/documents_metadata.json
  faq_file: /srv/mundap/data/faq.json
  database_path: /srv/mundap/data/mundap.db
watch:
  enabled: true
  debounce_ms: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://embed.internal:8080/v1", cfg.AI.EmbeddingHost)
	assert.Equal(t, "qwen2.5:7b", cfg.AI.ChatModel)
	assert.Equal(t, "/srv/mundap/docs", cfg.Data.DocsDir)
	assert.Equal(t, "/srv/mundap/data/faq.json", cfg.Data.FAQFile)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, time.Second, cfg.Watch.Debounce())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  docs_dir: ./docs
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "embeddinggemma", cfg.AI.EmbeddingModel)
	assert.Equal(t, "data/documents_metadata.json", cfg.Data.MetadataFile)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce())
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "없음.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "ai: ["))
		assert.Error(t, err)
	})

	t.Run("cleared required field", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
data:
  docs_dir: ""
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "docs_dir")
	})
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
