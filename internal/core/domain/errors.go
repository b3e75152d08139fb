package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file format no extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtraction indicates text extraction from a file failed.
	// Per-file and non-fatal: the ingestion loop logs and skips.
	ErrExtraction = errors.New("extraction failed")

	// ErrNoDocuments indicates the data directory holds no supported files.
	// Non-fatal: the agent still initialises and answers every query
	// with the no-information message.
	ErrNoDocuments = errors.New("no documents found")

	// ErrEmbeddingUnavailable indicates the embedding service failed or
	// is not configured. Fatal to the current call only; stored index
	// entries are untouched.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrIndexUnavailable indicates the vector index failed or is not
	// configured. Fatal to the current call only.
	ErrIndexUnavailable = errors.New("vector index unavailable")

	// ErrNotInitialized indicates the agent was queried before Initialize.
	// Callers receive a system-error outcome with confidence 0.
	ErrNotInitialized = errors.New("agent not initialized")
)
