// Package hash provides a local, fully deterministic embedding service
// based on feature hashing. No network or model weights are required,
// which makes it the default backend: identical text always produces an
// identical vector, so re-ingestion stays idempotent.
package hash

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"

	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions is the default vector size.
const DefaultDimensions = 256

// ModelName identifies this embedder in logs and summaries.
const ModelName = "feature-hash"

var tokenRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)

// EmbeddingService hashes word and bigram features into a fixed-length
// vector and L2-normalises the result, so the dot product of two
// vectors is their cosine similarity.
type EmbeddingService struct {
	dimensions int
}

// Option configures the embedding service.
type Option func(*EmbeddingService)

// WithDimensions sets the vector size.
func WithDimensions(d int) Option {
	return func(s *EmbeddingService) {
		if d > 0 {
			s.dimensions = d
		}
	}
}

// New creates a feature-hashing embedding service.
func New(opts ...Option) *EmbeddingService {
	s := &EmbeddingService{dimensions: DefaultDimensions}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Embed generates a vector embedding for the given text.
// Deterministic: identical input yields an identical vector.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, s.dimensions)

	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	for i, tok := range tokens {
		s.accumulate(vec, tok)
		if i+1 < len(tokens) {
			s.accumulate(vec, tok+" "+tokens[i+1])
		}
	}

	normalise(vec)
	return vec, nil
}

// accumulate hashes one feature into the vector. The lowest hash bit
// picks the sign, which keeps the expected dot product of unrelated
// texts near zero.
func (s *EmbeddingService) accumulate(vec []float32, feature string) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()

	idx := int(sum % uint64(s.dimensions)) //nolint:gosec // dimensions is small and positive
	if sum&1 == 0 {
		vec[idx]++
	} else {
		vec[idx]--
	}
}

// EmbedBatch generates embeddings for multiple texts.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embedding, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = embedding
	}
	return embeddings, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return ModelName
}

// Ping always succeeds: there is no remote service to reach.
func (s *EmbeddingService) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	return nil
}

// normalise scales the vector to unit length. The zero vector is left
// unchanged so empty text embeds to all zeros.
func normalise(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
