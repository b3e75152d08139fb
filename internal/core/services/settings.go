package services

import (
	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyEmbedProvider = "embedding.provider"
	keyEmbedModel    = "embedding.model"
	keyEmbedBaseURL  = "embedding.base_url"
	keyEmbedAPIKey   = "embedding.api_key"
	keyEmbedDims     = "embedding.dimensions"
	keyIndexBackend  = "index.backend"
	keyIndexPath     = "index.path"
	keyIngestDataDir = "ingest.data_dir"
	keyIngestChunk   = "ingest.chunk_size"
	keyQueryTopK     = "query.top_k"
)

// SettingsService reads and writes application settings through the
// config store, applying defaults for anything unset.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	return domain.AppSettings{
		Embedding: domain.EmbeddingSettings{
			Provider:   s.getProvider(defaults.Embedding.Provider),
			Model:      s.configStore.GetString(keyEmbedModel),
			BaseURL:    s.configStore.GetString(keyEmbedBaseURL),
			APIKey:     s.configStore.GetString(keyEmbedAPIKey),
			Dimensions: s.configStore.GetInt(keyEmbedDims),
		},
		Index: domain.IndexSettings{
			Backend: s.getBackend(defaults.Index.Backend),
			Path:    s.configStore.GetString(keyIndexPath),
		},
		Ingest: domain.IngestSettings{
			DataDir:   s.getString(keyIngestDataDir, defaults.Ingest.DataDir),
			ChunkSize: s.getInt(keyIngestChunk, defaults.Ingest.ChunkSize),
		},
		Query: domain.QuerySettings{
			TopK: s.getInt(keyQueryTopK, defaults.Query.TopK),
		},
	}
}

// SetEmbedding persists embedding provider settings.
func (s *SettingsService) SetEmbedding(settings domain.EmbeddingSettings) error {
	if !settings.Provider.IsValid() {
		return domain.ErrInvalidInput
	}
	if err := s.configStore.Set(keyEmbedProvider, settings.Provider.String()); err != nil {
		return err
	}
	if err := s.configStore.Set(keyEmbedModel, settings.Model); err != nil {
		return err
	}
	if err := s.configStore.Set(keyEmbedBaseURL, settings.BaseURL); err != nil {
		return err
	}
	if err := s.configStore.Set(keyEmbedAPIKey, settings.APIKey); err != nil {
		return err
	}
	return s.configStore.Set(keyEmbedDims, settings.Dimensions)
}

// SetDataDir persists the ingestion data directory.
func (s *SettingsService) SetDataDir(dir string) error {
	if dir == "" {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(keyIngestDataDir, dir)
}

// SetTopK persists the retrieval depth.
func (s *SettingsService) SetTopK(k int) error {
	if k <= 0 {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(keyQueryTopK, k)
}

// getProvider reads the embedding provider, falling back to the default
// when unset or invalid.
func (s *SettingsService) getProvider(fallback domain.AIProvider) domain.AIProvider {
	provider := domain.AIProvider(s.configStore.GetString(keyEmbedProvider))
	if !provider.IsValid() {
		return fallback
	}
	return provider
}

// getBackend reads the index backend, falling back to the default when
// unset or invalid.
func (s *SettingsService) getBackend(fallback domain.IndexBackend) domain.IndexBackend {
	backend := domain.IndexBackend(s.configStore.GetString(keyIndexBackend))
	if !backend.IsValid() {
		return fallback
	}
	return backend
}

func (s *SettingsService) getString(key, fallback string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return fallback
}
