package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lenahart/ledgerlens/internal/cli"
	"github.com/lenahart/ledgerlens/internal/model"
)

func init() {
	goalsCmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	addCmd := &cobra.Command{
		Use:   "add [name] [target amount]",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE:  runGoalsAdd,
	}
	addCmd.Flags().String("deadline", "", "goal deadline (YYYY-MM-DD)")
	addCmd.Flags().String("priority", "medium", "goal priority (high, medium, low)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE:  runGoalsList,
	}

	completeCmd := &cobra.Command{
		Use:   "complete [goal ID]",
		Short: "Mark a goal as completed",
		Args:  cobra.ExactArgs(1),
		RunE:  makeStatusRunner(model.GoalCompleted),
	}

	abandonCmd := &cobra.Command{
		Use:   "abandon [goal ID]",
		Short: "Mark a goal as abandoned",
		Args:  cobra.ExactArgs(1),
		RunE:  makeStatusRunner(model.GoalAbandoned),
	}

	goalsCmd.AddCommand(addCmd, listCmd, completeCmd, abandonCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
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

	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid target amount %q: %w", args[1], err)
	}

	goal := &model.Goal{
		ID:           fmt.Sprintf("goal-%d", time.Now().UnixNano()),
		UserID:       userID,
		Name:         args[0],
		TargetAmount: target,
		Priority:     model.GoalPriority(cmd.Flag("priority").Value.String()),
		Status:       model.GoalActive,
		CreatedAt:    time.Now().UTC(),
	}

	if deadline, _ := cmd.Flags().GetString("deadline"); deadline != "" {
		parsed, err := time.Parse("2006-01-02", deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q: %w", deadline, err)
		}
		goal.Deadline = parsed
	}

	if err := store.SaveGoal(ctx, goal); err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}

	fmt.Println(cli.Success("Created goal %s: %s (%.2f)", goal.ID, goal.Name, goal.TargetAmount))
	return nil
}

func runGoalsList(cmd *cobra.Command, _ []string) error {
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

	goals, err := store.GetAllGoals(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No goals yet. Create one with 'lens goals add'."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Goals (%d)", len(goals))))
	for _, g := range goals {
		deadline := "no deadline"
		if !g.Deadline.IsZero() {
			deadline = g.Deadline.Format("2006-01-02")
		}
		line := fmt.Sprintf("%s  %s: %.2f by %s (priority: %s, status: %s)",
			g.ID, g.Name, g.TargetAmount, deadline, g.Priority, g.Status)
		switch g.Status {
		case model.GoalCompleted:
			fmt.Println(cli.SuccessStyle.Render(line))
		case model.GoalAbandoned:
			fmt.Println(cli.SubtleStyle.Render(line))
		default:
			fmt.Println(line)
		}
	}

	return nil
}

func makeStatusRunner(status model.GoalStatus) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		_, store, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		goal, err := store.GetGoal(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load goal: %w", err)
		}

		if err := store.UpdateGoalStatus(ctx, goal.ID, status); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		fmt.Println(cli.Success("Goal %q marked %s", goal.Name, status))
		return nil
	}
}
