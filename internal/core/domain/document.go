package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Format identifies the on-disk format of a source document.
type Format string

const (
	// FormatText is a plain text file (.txt).
	FormatText Format = "text"

	// FormatMarkdown is a Markdown file (.md).
	FormatMarkdown Format = "markdown"

	// FormatPDF is a PDF file (.pdf).
	FormatPDF Format = "pdf"

	// FormatDOCX is a Word document (.docx).
	FormatDOCX Format = "docx"
)

// FormatForExtension maps a file extension (with leading dot, any case)
// to its Format. The boolean is false for unsupported extensions.
func FormatForExtension(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case ".txt":
		return FormatText, true
	case ".md":
		return FormatMarkdown, true
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	default:
		return "", false
	}
}

// Document represents a single source file after text extraction.
type Document struct {
	// Path is the absolute location of the source file.
	Path string

	// Format is the detected file format.
	Format Format

	// Content is the extracted plain text. May be empty when
	// extraction failed; such documents contribute no chunks.
	Content string
}

// SourceFile returns the base name of the originating file.
func (d Document) SourceFile() string {
	return filepath.Base(d.Path)
}

// Chunk is the atomic unit of indexing and retrieval: a bounded-size
// contiguous slice of a document's text.
type Chunk struct {
	// ID uniquely identifies the chunk in the index. It is derived
	// from the source file name and position, so re-ingesting a file
	// overwrites its previous chunks instead of duplicating them.
	ID string

	// SourceFile is the base name of the originating file.
	SourceFile string

	// Position is the 0-based ordinal within the document.
	Position int

	// Content is the chunk text. Non-empty after trimming.
	Content string
}

// ChunkID builds the deterministic identifier for a chunk of the given
// source file. The scheme guarantees no two files share an ID.
func ChunkID(sourceFile string, position int) string {
	return fmt.Sprintf("resume_%s_%d", filepath.Base(sourceFile), position)
}

// IndexEntry is the persisted unit in the vector index: a chunk's text,
// its embedding and the metadata describing its origin.
type IndexEntry struct {
	// ID is the chunk identifier (upsert key).
	ID string

	// Content is the chunk text.
	Content string

	// Embedding is the vector representation of Content.
	Embedding []float32

	// Metadata describes the chunk's origin.
	Metadata EntryMetadata
}

// EntryMetadata carries the provenance of an indexed chunk.
type EntryMetadata struct {
	// SourceFile is the base name of the originating file.
	SourceFile string

	// FilePath is the absolute path of the originating file.
	FilePath string

	// ChunkIndex is the 0-based position within the document.
	ChunkIndex int

	// DocumentType tags the kind of document. Always "resume" for
	// entries produced by the ingestion pipeline.
	DocumentType string

	// ProcessedAt is when the chunk was ingested.
	ProcessedAt time.Time
}

// DocumentTypeResume is the fixed document type tag applied during ingestion.
const DocumentTypeResume = "resume"
