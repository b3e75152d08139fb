package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForExtension(t *testing.T) {
	tests := []struct {
		ext       string
		format    Format
		supported bool
	}{
		{".txt", FormatText, true},
		{".md", FormatMarkdown, true},
		{".pdf", FormatPDF, true},
		{".docx", FormatDOCX, true},
		{".PDF", FormatPDF, true},
		{".Md", FormatMarkdown, true},
		{".doc", "", false},
		{".html", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			format, ok := FormatForExtension(tt.ext)
			assert.Equal(t, tt.supported, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestDocument_SourceFile(t *testing.T) {
	doc := Document{Path: "/home/user/data/my_resume.pdf", Format: FormatPDF}
	assert.Equal(t, "my_resume.pdf", doc.SourceFile())
}

func TestChunkID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, ChunkID("resume.pdf", 0), ChunkID("resume.pdf", 0))
	})

	t.Run("scheme", func(t *testing.T) {
		assert.Equal(t, "resume_cv.txt_3", ChunkID("cv.txt", 3))
	})

	t.Run("strips directories", func(t *testing.T) {
		assert.Equal(t, "resume_cv.txt_0", ChunkID("/data/cv.txt", 0))
	})

	t.Run("distinct files never collide", func(t *testing.T) {
		assert.NotEqual(t, ChunkID("a.txt", 0), ChunkID("b.txt", 0))
	})
}
