package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerfolio/resume-agent/internal/adapters/driven/watcher"
	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
)

var (
	ingestWatch bool
	ingestReset bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index resume documents",
	Long: `Scans the data directory for resume documents, extracts their text,
splits it into chunks, embeds each chunk and stores it in the vector
index. Files whose names contain "resume" or "cv" are preferred; when
none match, all supported files are indexed.

Use --watch to keep running and re-index whenever a document in the
data directory changes.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "re-index when documents change")
	ingestCmd.Flags().BoolVar(&ingestReset, "reset", false, "clear the index before ingesting")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()

	if ingestReset {
		if vectorIndex == nil {
			return errors.New("vector index not configured")
		}
		if err := vectorIndex.Clear(ctx); err != nil {
			return fmt.Errorf("clearing index: %w", err)
		}
		cmd.Println("Index cleared.")
	}

	if err := ingestOnce(ctx, cmd); err != nil {
		return err
	}

	if !ingestWatch {
		return nil
	}

	return watchAndIngest(ctx, cmd)
}

func ingestOnce(ctx context.Context, cmd *cobra.Command) error {
	report, err := ingestService.Ingest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoDocuments) {
			cmd.Println("No resume documents found in the data directory.")
			cmd.Println("Add a resume file (txt, md, docx or pdf) and run 'resume-agent ingest' again.")
			return nil
		}
		return fmt.Errorf("ingestion failed: %w", err)
	}

	printIngestReport(cmd, report)
	return nil
}

func printIngestReport(cmd *cobra.Command, report *driving.IngestReport) {
	cmd.Println("Ingestion complete.")
	cmd.Printf("  Files found:     %d\n", report.FilesFound)
	cmd.Printf("  Files processed: %d\n", report.FilesProcessed)
	if report.FilesSkipped > 0 {
		cmd.Printf("  Files skipped:   %d\n", report.FilesSkipped)
	}
	cmd.Printf("  Chunks indexed:  %d\n", report.ChunksIndexed)
}

// watchAndIngest re-runs ingestion whenever a supported document in
// the data directory is created, modified or removed. Blocks until
// the command context is cancelled.
func watchAndIngest(ctx context.Context, cmd *cobra.Command) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	dataDir := settingsService.Get().Ingest.DataDir

	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	events, err := w.Watch(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dataDir, err)
	}

	cmd.Printf("Watching %s for changes (Ctrl-C to stop)...\n", dataDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			cmd.Printf("Change detected: %s\n", event.Path)
			if err := ingestOnce(ctx, cmd); err != nil {
				cmd.Printf("Re-ingestion failed: %v\n", err)
			}
		}
	}
}
