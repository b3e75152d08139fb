// Package cli implements the command-line interface for the resume
// agent. Commands are thin adapters over the driving ports; all
// wiring of adapters to services happens once in initServices.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/careerfolio/resume-agent/internal/adapters/driven/ai"
	configfile "github.com/careerfolio/resume-agent/internal/adapters/driven/config/file"
	"github.com/careerfolio/resume-agent/internal/adapters/driven/index/memory"
	"github.com/careerfolio/resume-agent/internal/adapters/driven/index/sqlite"
	"github.com/careerfolio/resume-agent/internal/chunker"
	"github.com/careerfolio/resume-agent/internal/core/domain"
	"github.com/careerfolio/resume-agent/internal/core/ports/driven"
	"github.com/careerfolio/resume-agent/internal/core/ports/driving"
	"github.com/careerfolio/resume-agent/internal/core/services"
	"github.com/careerfolio/resume-agent/internal/extractors"
	"github.com/careerfolio/resume-agent/internal/extractors/docx"
	"github.com/careerfolio/resume-agent/internal/extractors/markdown"
	"github.com/careerfolio/resume-agent/internal/extractors/pdf"
	"github.com/careerfolio/resume-agent/internal/extractors/plaintext"
	"github.com/careerfolio/resume-agent/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging.
var verbose bool

// Services used by the commands. They are wired lazily on first
// command execution; tests inject mocks before calling Execute.
var (
	settingsService *services.SettingsService
	ingestService   driving.Ingestor
	queryEngine     driving.QueryEngine
	agentService    driving.Agent
	vectorIndex     driven.VectorIndex
)

var rootCmd = &cobra.Command{
	Use:   "resume-agent",
	Short: "Personal resume question-answering agent",
	Long: `An AI agent that answers questions about a personal resume.

Documents in the data directory are extracted, chunked, embedded and
indexed; questions are answered by retrieving the most relevant
sections and assembling a categorised response.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// initServices wires adapters to services. A no-op when the agent is
// already set, so tests can inject mocks first.
func initServices() error {
	if agentService != nil {
		return nil
	}

	// Environment variables may carry API keys for cloud providers.
	_ = godotenv.Load()

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService = services.NewSettingsService(store)
	settings := settingsService.Get()

	embedder, err := ai.CreateEmbeddingService(settings.Embedding)
	if err != nil {
		return fmt.Errorf("creating embedding service: %w", err)
	}

	index, err := openIndex(settings.Index)
	if err != nil {
		return fmt.Errorf("opening vector index: %w", err)
	}

	registry := extractors.NewRegistry(
		plaintext.New(),
		markdown.New(),
		docx.New(),
		pdf.New(),
	)
	splitter := chunker.New(chunker.WithChunkSize(settings.Ingest.ChunkSize))

	vectorIndex = index
	ingestService = services.NewIngestService(registry, splitter, embedder, index, settings.Ingest.DataDir)
	queryEngine = services.NewQueryService(embedder, index)
	agentService = services.NewAgentService(ingestService, queryEngine, index)

	return nil
}

func openIndex(settings domain.IndexSettings) (driven.VectorIndex, error) {
	switch settings.Backend {
	case domain.IndexBackendMemory:
		return memory.NewIndex(), nil
	case domain.IndexBackendSQLite, "":
		return sqlite.NewIndex(settings.Path)
	default:
		return nil, fmt.Errorf("unsupported index backend: %s", settings.Backend)
	}
}

func closeServices() {
	if vectorIndex != nil {
		_ = vectorIndex.Close()
	}
}
