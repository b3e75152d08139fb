// Package sqlite provides a persistent implementation of the vector index.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Embeddings are stored as
// little-endian float32 blobs; nearest-neighbour queries scan all rows and
// rank by cosine distance in process, which is fast enough for the corpus
// sizes a personal resume collection produces.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.resume-agent/data/index.db
//
// # Thread Safety
//
// All operations are thread-safe. The index uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
