package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_HasWatchFlag(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("watch")
	require.NotNil(t, flag, "watch flag should exist")
	assert.Equal(t, "w", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestIngestCmd_HasResetFlag(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("reset")
	require.NotNil(t, flag, "reset flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestIngestCmd_PrintsReport(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ingestion complete.")
	assert.Contains(t, buf.String(), "Files found:     1")
	assert.Contains(t, buf.String(), "Files processed: 1")
	assert.Contains(t, buf.String(), "Chunks indexed:  3")
}

func TestIngestCmd_OmitsSkippedWhenZero(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Files skipped")
}

func TestIngestCmd_NoDocumentsIsNotAnError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ingestService.(*mockIngestor).ingestErr = fmt.Errorf("%w in data", domain.ErrNoDocuments)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No resume documents found")
}

func TestIngestCmd_ResetClearsIndex(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	index := vectorIndex.(*mockIndex)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "--reset"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestReset = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, index.cleared)
	assert.Contains(t, buf.String(), "Index cleared.")
}

func TestIngestCmd_FailurePropagates(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ingestService.(*mockIngestor).ingestErr = assert.AnError

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ingestion failed")
}
