package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
		require.NoError(t, cfg.Validate())
	})

	t.Run("shared host option", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://gpu-box:9100"))
		assert.Equal(t, "http://gpu-box:9100", cfg.EmbeddingHost)
		assert.Equal(t, cfg.EmbeddingHost, cfg.ChatHost)
	})

	t.Run("split hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:11434"),
			WithChatHost("http://chat:11434"),
			WithChatModel("gpt-4o-mini"),
		)
		assert.Equal(t, "http://embed:11434", cfg.EmbeddingHost)
		assert.Equal(t, "http://chat:11434", cfg.ChatHost)
		assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"adds v1 suffix", "http://localhost:11434", "http://localhost:11434/v1"},
		{"strips trailing slash first", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"keeps existing suffix", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"leaves empty alone", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{EmbeddingHost: tt.host, ChatHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
			assert.Equal(t, tt.want, cfg.ChatHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing chat model", func(t *testing.T) {
		cfg := NewConfig()
		cfg.ChatModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := NewConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:8080"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:8080/v1", cfg.ChatHost)
	})
}
