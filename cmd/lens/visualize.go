package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lenahart/ledgerlens/internal/cli"
)

func init() {
	visualizeCmd := &cobra.Command{
		Use:   "visualize",
		Short: "Build chart datasets and categorization for a user",
		Long: `Run the visualization pipeline: normalize stored transactions, ask the
oracle to categorize them, and emit the five chart datasets as JSON.`,
		RunE: runVisualize,
	}

	visualizeCmd.Flags().StringP("output", "o", "", "write JSON to file instead of stdout")

	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	userID, err := requireUserID(cfg)
	if err != nil {
		return err
	}

	eng, err := buildEngine(ctx, cfg, store)
	if err != nil {
		return err
	}

	result, err := eng.Visualize(ctx, userID)
	if err != nil {
		return fmt.Errorf("visualization failed: %w", err)
	}

	if !result.Success {
		fmt.Println(cli.Warning("%s", result.Error))
		return nil
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, append(payload, '\n'), 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Println(cli.Success("Wrote %d datasets for %d transactions to %s",
			len(result.Visualizations), result.TransactionCount, output))
		return nil
	}

	fmt.Println(string(payload))
	return nil
}
