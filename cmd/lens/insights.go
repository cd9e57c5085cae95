package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lenahart/ledgerlens/internal/cli"
)

func init() {
	insightsCmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate spending insights, alerts, and suggestions",
		RunE:  runInsights,
	}

	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
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

	result, err := eng.Insights(ctx, userID)
	if err != nil {
		return fmt.Errorf("insights failed: %w", err)
	}

	if !result.Success {
		fmt.Println(cli.Warning("%s", result.Error))
		return nil
	}

	printSection := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Println(cli.TitleStyle.Render(title))
		for _, item := range items {
			fmt.Printf("  • %s\n", item)
		}
	}

	printSection("Key insights", result.KeyInsights)
	printSection("Alerts", result.Alerts)
	printSection("Suggestions", result.Suggestions)

	return nil
}
