// Package chunker provides a fixed-size word-window text splitter.
package chunker

import "strings"

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = 500

// Splitter partitions text into consecutive, non-overlapping windows
// of a fixed number of words. Windows never overlap and no semantic
// boundary detection is attempted; word count is the only criterion.
type Splitter struct {
	chunkSize int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the window size in words.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChunkSize returns the configured window size in words.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Split partitions text into ordered chunks. Words are whitespace
// tokens; each chunk joins its window's words with single spaces.
// Empty input yields no chunks; input shorter than one window yields
// a single chunk. Chunk i always precedes chunk i+1 in the source.
func (s *Splitter) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+s.chunkSize-1)/s.chunkSize)
	for start := 0; start < len(words); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[start:end], " ")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}

	return chunks
}
