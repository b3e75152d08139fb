package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderHash.IsValid())
	assert.True(t, AIProviderOllama.IsValid())
	assert.True(t, AIProviderOpenAI.IsValid())
	assert.False(t, AIProvider("anthropic").IsValid())
	assert.False(t, AIProvider("").IsValid())
}

func TestAIProvider_RequiresAPIKey(t *testing.T) {
	assert.False(t, AIProviderHash.RequiresAPIKey())
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.True(t, AIProviderOpenAI.RequiresAPIKey())
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings EmbeddingSettings
		want     bool
	}{
		{
			name:     "hash needs nothing",
			settings: EmbeddingSettings{Provider: AIProviderHash},
			want:     true,
		},
		{
			name:     "ollama needs nothing",
			settings: EmbeddingSettings{Provider: AIProviderOllama},
			want:     true,
		},
		{
			name:     "openai without key",
			settings: EmbeddingSettings{Provider: AIProviderOpenAI},
			want:     false,
		},
		{
			name:     "openai with key",
			settings: EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "sk-test"},
			want:     true,
		},
		{
			name:     "unknown provider",
			settings: EmbeddingSettings{Provider: "invalid"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.IsConfigured())
		})
	}
}

func TestIndexBackend_IsValid(t *testing.T) {
	assert.True(t, IndexBackendMemory.IsValid())
	assert.True(t, IndexBackendSQLite.IsValid())
	assert.False(t, IndexBackend("redis").IsValid())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, AIProviderHash, settings.Embedding.Provider)
	assert.True(t, settings.Embedding.IsConfigured())
	assert.Equal(t, IndexBackendSQLite, settings.Index.Backend)
	assert.Equal(t, DefaultDataDir, settings.Ingest.DataDir)
	assert.Equal(t, DefaultChunkSize, settings.Ingest.ChunkSize)
	assert.Equal(t, DefaultTopK, settings.Query.TopK)
}
