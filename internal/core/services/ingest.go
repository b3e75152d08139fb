package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careerfolio/resume-agent/internal/chunker"
	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
	"github.com/careerfolio/resume-agent/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService populates the vector index from a directory of
// resume documents.
type IngestService struct {
	extractors driven.ExtractorRegistry
	splitter   *chunker.Splitter
	embedder   driven.EmbeddingService
	index      driven.VectorIndex
	dataDir    string
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	extractors driven.ExtractorRegistry,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	dataDir string,
) *IngestService {
	return &IngestService{
		extractors: extractors,
		splitter:   splitter,
		embedder:   embedder,
		index:      index,
		dataDir:    dataDir,
	}
}

// Ingest processes every supported file in the data directory.
// Files whose names suggest they are resumes are preferred; when none
// match, all supported files are processed. Per-file failures are
// logged and skipped.
func (s *IngestService) Ingest(ctx context.Context) (*driving.IngestReport, error) {
	report := &driving.IngestReport{
		RunID: uuid.NewString(),
	}

	logger.Section("Document Ingestion")
	logger.Info("Run %s: scanning %s", report.RunID, s.dataDir)

	candidates, err := s.enumerate()
	if err != nil {
		return nil, err
	}
	report.FilesFound = len(candidates)

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoDocuments, s.dataDir)
	}

	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunks, err := s.ingestFile(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", filepath.Base(path), err)
			report.FilesSkipped++
			continue
		}
		if chunks == 0 {
			logger.Warn("Skipping %s: no text content", filepath.Base(path))
			report.FilesSkipped++
			continue
		}

		report.FilesProcessed++
		report.ChunksIndexed += chunks
		logger.Info("Indexed %s: %d chunks", filepath.Base(path), chunks)
	}

	logger.Info("Run %s complete: %d/%d files, %d chunks",
		report.RunID, report.FilesProcessed, report.FilesFound, report.ChunksIndexed)
	return report, nil
}

// enumerate lists supported files in the data directory. Files whose
// names contain "resume" or "cv" are preferred; when none match, every
// supported file is a candidate.
func (s *IngestService) enumerate() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var supported, preferred []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := domain.FormatForExtension(filepath.Ext(name)); !ok {
			continue
		}

		path := filepath.Join(s.dataDir, name)
		supported = append(supported, path)
		if isResumeName(name) {
			preferred = append(preferred, path)
		}
	}

	if len(preferred) > 0 {
		return preferred, nil
	}
	return supported, nil
}

// ingestFile extracts, chunks, embeds and indexes one file, returning
// the number of chunks written.
func (s *IngestService) ingestFile(ctx context.Context, path string) (int, error) {
	text, err := s.extractors.Extract(ctx, path)
	if err != nil {
		return 0, err
	}

	pieces := s.splitter.Split(text)
	if len(pieces) == 0 {
		return 0, nil
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, pieces)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
	}

	sourceFile := filepath.Base(path)
	now := time.Now().UTC()
	for i, piece := range pieces {
		entry := domain.IndexEntry{
			ID:        domain.ChunkID(sourceFile, i),
			Content:   piece,
			Embedding: embeddings[i],
			Metadata: domain.EntryMetadata{
				SourceFile:   sourceFile,
				FilePath:     path,
				ChunkIndex:   i,
				DocumentType: domain.DocumentTypeResume,
				ProcessedAt:  now,
			},
		}
		if err := s.index.Upsert(ctx, entry); err != nil {
			return 0, fmt.Errorf("%w: %w", domain.ErrIndexUnavailable, err)
		}
	}

	return len(pieces), nil
}

// isResumeName reports whether the file name suggests a resume document.
func isResumeName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "resume") || strings.Contains(lower, "cv")
}
