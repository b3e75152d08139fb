package domain

const unknownDescription = "Unknown"

// AIProvider identifies an embedding service provider.
type AIProvider string

// Available embedding providers.
const (
	// AIProviderHash is the built-in deterministic feature-hash embedder.
	AIProviderHash AIProvider = "hash"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderHash, AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI
}

// IsLocal returns true if this provider runs without network access
// to a cloud service.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderHash || p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderHash:
		return "Feature hash (built-in, deterministic)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// AllAIProviders returns every available provider in display order.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderHash, AIProviderOllama, AIProviderOpenAI}
}

// DefaultEmbeddingModels returns the default model per provider.
func DefaultEmbeddingModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderHash:   "feature-hash",
		AIProviderOllama: "nomic-embed-text",
		AIProviderOpenAI: "text-embedding-3-small",
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama and OpenAI-compatible APIs).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// Dimensions overrides the provider's default vector size.
	Dimensions int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// IndexBackend identifies a vector index implementation.
type IndexBackend string

// Available index backends.
const (
	// IndexBackendMemory keeps the index in process memory only.
	IndexBackendMemory IndexBackend = "memory"

	// IndexBackendSQLite persists the index to a local SQLite database.
	IndexBackendSQLite IndexBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b IndexBackend) IsValid() bool {
	switch b {
	case IndexBackendMemory, IndexBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b IndexBackend) String() string {
	return string(b)
}

// IndexSettings holds vector index configuration.
type IndexSettings struct {
	// Backend selects the index implementation.
	Backend IndexBackend

	// Path is the database file path (sqlite backend only).
	// Empty means the default location under the config directory.
	Path string
}

// IngestSettings holds document ingestion configuration.
type IngestSettings struct {
	// DataDir is the directory scanned for resume documents.
	DataDir string

	// ChunkSize is the chunk window in words.
	ChunkSize int
}

// QuerySettings holds retrieval configuration.
type QuerySettings struct {
	// TopK is the number of chunks retrieved per query.
	TopK int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// Index holds vector index settings.
	Index IndexSettings

	// Ingest holds document ingestion settings.
	Ingest IngestSettings

	// Query holds retrieval settings.
	Query QuerySettings
}

// Default values for application settings.
const (
	DefaultDataDir   = "data"
	DefaultChunkSize = 500
	DefaultTopK      = 3
)

// DefaultAppSettings returns settings with sensible defaults.
// The hash embedder and SQLite index work with no external services,
// so a fresh install is usable without configuration.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Embedding: EmbeddingSettings{
			Provider: AIProviderHash,
		},
		Index: IndexSettings{
			Backend: IndexBackendSQLite,
		},
		Ingest: IngestSettings{
			DataDir:   DefaultDataDir,
			ChunkSize: DefaultChunkSize,
		},
		Query: QuerySettings{
			TopK: DefaultTopK,
		},
	}
}
