package driving

import "context"

// Ingestor populates the vector index from a directory of documents.
type Ingestor interface {
	// Ingest processes every supported file in the data directory.
	// Per-file failures are logged and skipped; the returned report
	// describes the partial result. Returns domain.ErrNoDocuments
	// when the directory holds no supported files at all.
	Ingest(ctx context.Context) (*IngestReport, error)
}

// IngestReport summarises one ingestion run.
type IngestReport struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// FilesFound is the number of candidate files enumerated.
	FilesFound int

	// FilesProcessed is the number of files that contributed chunks.
	FilesProcessed int

	// FilesSkipped is the number of files skipped after extraction
	// failures or empty content.
	FilesSkipped int

	// ChunksIndexed is the total number of chunks upserted.
	ChunksIndexed int
}
