// Package watcher provides a directory watcher backed by fsnotify.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
	"github.com/careerfolio/resume-agent/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.DirectoryWatcher = (*Watcher)(nil)

// eventBuffer bounds pending events while the consumer is re-ingesting.
const eventBuffer = 100

// Watcher monitors a directory for changes to supported document files.
type Watcher struct {
	watcher *fsnotify.Watcher
}

// New creates a new directory watcher.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{watcher: w}, nil
}

// Watch starts monitoring the directory and emits events for supported
// document files until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan driven.FileEvent, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	events := make(chan driven.FileEvent, eventBuffer)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if _, supported := domain.FormatForExtension(filepath.Ext(event.Name)); !supported {
					continue
				}

				var op driven.FileOperation
				switch {
				case event.Op.Has(fsnotify.Create):
					op = driven.FileCreated
				case event.Op.Has(fsnotify.Write):
					op = driven.FileModified
				case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
					op = driven.FileDeleted
				default:
					continue
				}

				select {
				case events <- driven.FileEvent{Path: event.Name, Operation: op}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return events, nil
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
