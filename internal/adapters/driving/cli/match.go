package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careerfolio/resume-agent/internal/core/domain"
)

var (
	matchFile string
	matchJSON bool
)

var matchCmd = &cobra.Command{
	Use:   "match [job-description]",
	Short: "Match resume skills against a job description",
	Long: `Compares the skills indexed from the resume with the words of a job
description and reports the matching skills and a match percentage.

The job description can be passed as an argument or read from a file
with --file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchFile, "file", "f", "", "read the job description from a file")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output the match as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if agentService == nil {
		return errors.New("agent not configured")
	}

	description, err := jobDescription(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := agentService.Initialize(ctx); err != nil {
		return fmt.Errorf("initialising agent: %w", err)
	}

	match := agentService.SkillMatch(ctx, description)

	if matchJSON {
		return outputMatchJSON(cmd, match)
	}

	cmd.Printf("Match: %.1f%%\n", match.MatchPercentage)
	if len(match.MatchingSkills) > 0 {
		cmd.Printf("Matching skills: %s\n", strings.Join(match.MatchingSkills, ", "))
	}
	if match.SkillsSummary != "" {
		cmd.Println()
		cmd.Println("Skills summary:")
		cmd.Printf("  %s\n", match.SkillsSummary)
	}
	return nil
}

func jobDescription(args []string) (string, error) {
	if matchFile != "" {
		data, err := os.ReadFile(matchFile)
		if err != nil {
			return "", fmt.Errorf("reading job description: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", errors.New("provide a job description as an argument or with --file")
	}
	return args[0], nil
}

func outputMatchJSON(cmd *cobra.Command, match *domain.SkillMatch) error {
	data, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
