package driven

import "context"

// FileOperation classifies a change observed in a watched directory.
type FileOperation int

const (
	// FileCreated indicates a new file appeared.
	FileCreated FileOperation = iota

	// FileModified indicates an existing file was written to.
	FileModified

	// FileDeleted indicates a file was removed.
	FileDeleted
)

// FileEvent describes a single change to a watched file.
type FileEvent struct {
	// Path is the location of the changed file.
	Path string

	// Operation is the kind of change.
	Operation FileOperation
}

// DirectoryWatcher monitors a directory for changes to supported
// document files. Used by watch mode to trigger re-ingestion.
type DirectoryWatcher interface {
	// Watch starts monitoring the directory and emits events until the
	// context is cancelled. The returned channel is closed on stop.
	Watch(ctx context.Context, dir string) (<-chan FileEvent, error)

	// Close stops the watcher and releases resources.
	Close() error
}
