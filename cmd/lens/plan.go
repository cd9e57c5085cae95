package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lenahart/ledgerlens/internal/cli"
)

func init() {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a savings plan from active goals and spending",
		Long: `Run the planning pipeline: collect active goals and the trailing
spending summary, then ask the oracle for a narrative savings plan.`,
		RunE: runPlan,
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
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

	result, err := eng.Plan(ctx, userID)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	if !result.Success {
		if result.Message != "" {
			fmt.Println(cli.Warning("%s", result.Message))
			return nil
		}
		return fmt.Errorf("%s", result.Error)
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Savings plan (%d goals)", result.GoalsCount)))
	if result.SpendingSummary != nil {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
			"Spent %.2f over the last 30 days across %d transactions",
			result.SpendingSummary.TotalSpent, result.SpendingSummary.TransactionCount)))
	}
	fmt.Println(cli.BoxStyle.Render(result.Plan))

	return nil
}
