package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/careerfolio/resume-agent/internal/adapters/driven/index/sqlite/migrations"
	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is a SQLite-backed implementation of driven.VectorIndex.
type Index struct {
	db   *sql.DB
	path string
}

// NewIndex creates a new SQLite index at the specified path.
// If path is empty, defaults to ~/.resume-agent/data/index.db.
func NewIndex(path string) (*Index, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".resume-agent", "data", "index.db")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	idx := &Index{
		db:   db,
		path: path,
	}

	// Run migrations
	if err := idx.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return idx, nil
}

// Close closes the database connection.
func (i *Index) Close() error {
	return i.db.Close()
}

// Path returns the database file path.
func (i *Index) Path() string {
	return i.path
}

// Upsert inserts or replaces the entry with the same ID.
func (i *Index) Upsert(ctx context.Context, entry domain.IndexEntry) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := i.db.ExecContext(ctx, `
		INSERT INTO chunks (id, content, embedding, source_file, file_path, chunk_index, document_type, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			embedding = excluded.embedding,
			source_file = excluded.source_file,
			file_path = excluded.file_path,
			chunk_index = excluded.chunk_index,
			document_type = excluded.document_type,
			processed_at = excluded.processed_at
	`, entry.ID, entry.Content, float32SliceToBytes(entry.Embedding),
		entry.Metadata.SourceFile, entry.Metadata.FilePath, entry.Metadata.ChunkIndex,
		entry.Metadata.DocumentType, entry.Metadata.ProcessedAt)

	if err != nil {
		return fmt.Errorf("saving chunk: %w", err)
	}
	return nil
}

// Query returns up to k entries nearest to the query vector. All rows
// are scanned and ranked by cosine distance in process.
func (i *Index) Query(ctx context.Context, vector []float32, k int) ([]driven.Hit, error) {
	if k <= 0 {
		return nil, nil
	}

	rows, err := i.db.QueryContext(ctx, `
		SELECT id, content, embedding, source_file, file_path, chunk_index, document_type, processed_at
		FROM chunks
	`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var hits []driven.Hit //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, embedding, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		hits = append(hits, driven.Hit{
			Entry:    entry,
			Distance: domain.CosineDistance(vector, embedding),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Distance != hits[b].Distance {
			return hits[a].Distance < hits[b].Distance
		}
		return hits[a].Entry.ID < hits[b].Entry.ID
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// All returns every stored entry without embeddings, ordered by ID.
func (i *Index) All(ctx context.Context) ([]domain.IndexEntry, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, content, source_file, file_path, chunk_index, document_type, processed_at
		FROM chunks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var entries []domain.IndexEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.IndexEntry
		if err := rows.Scan(&entry.ID, &entry.Content,
			&entry.Metadata.SourceFile, &entry.Metadata.FilePath, &entry.Metadata.ChunkIndex,
			&entry.Metadata.DocumentType, &entry.Metadata.ProcessedAt); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored entries.
func (i *Index) Count(ctx context.Context) (int, error) {
	var count int
	err := i.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// Clear removes all entries.
func (i *Index) Clear(ctx context.Context) error {
	_, err := i.db.ExecContext(ctx, "DELETE FROM chunks")
	if err != nil {
		return fmt.Errorf("clearing chunks: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (i *Index) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := i.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := i.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run up migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := i.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := i.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// scanEntry scans a chunk row, returning the entry without its embedding
// and the embedding separately.
func scanEntry(rows *sql.Rows) (domain.IndexEntry, []float32, error) {
	var entry domain.IndexEntry
	var embeddingBlob []byte

	if err := rows.Scan(&entry.ID, &entry.Content, &embeddingBlob,
		&entry.Metadata.SourceFile, &entry.Metadata.FilePath, &entry.Metadata.ChunkIndex,
		&entry.Metadata.DocumentType, &entry.Metadata.ProcessedAt); err != nil {
		return domain.IndexEntry{}, nil, fmt.Errorf("scanning chunk: %w", err)
	}

	return entry, bytesToFloat32Slice(embeddingBlob), nil
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
