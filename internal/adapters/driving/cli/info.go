package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show agent identity and knowledge base statistics",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, _ []string) error {
	if agentService == nil {
		return errors.New("agent not configured")
	}

	ctx := cmd.Context()
	if err := agentService.Initialize(ctx); err != nil {
		return fmt.Errorf("initialising agent: %w", err)
	}

	info := agentService.Info(ctx)

	if infoJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal info: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s\n", info.Name)
	cmd.Printf("%s\n", info.Description)
	cmd.Println()
	cmd.Println("Capabilities:")
	for _, capability := range info.Capabilities {
		cmd.Printf("  - %s\n", capability)
	}
	cmd.Println()
	cmd.Println(info.ResumeSummary)
	return nil
}
