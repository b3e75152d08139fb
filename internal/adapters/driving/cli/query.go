package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a question about the resume",
	Long: `Answers a natural-language question about the resume.

The question is classified (experience, skills, education,
achievements, projects, contact or general) and answered from the
most relevant indexed sections.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the outcome as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if agentService == nil {
		return errors.New("agent not configured")
	}

	ctx := cmd.Context()
	if err := agentService.Initialize(ctx); err != nil {
		return fmt.Errorf("initialising agent: %w", err)
	}

	outcome := agentService.ProcessQuery(ctx, args[0])

	if queryJSON {
		return outputQueryJSON(cmd, outcome)
	}

	cmd.Println(outcome.Response)
	cmd.Println()
	cmd.Printf("  Category:   %s\n", outcome.Category)
	cmd.Printf("  Confidence: %.2f\n", outcome.Confidence)
	cmd.Printf("  Sources:    %d\n", outcome.SourceChunks)
	return nil
}

func outputQueryJSON(cmd *cobra.Command, outcome *domain.QueryOutcome) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
