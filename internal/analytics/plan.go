package analytics

import (
	"fmt"
	"strings"

	"github.com/lenahart/ledgerlens/internal/model"
)

// PlanContext carries the exact inputs the planning oracle receives.
// Building it is pure data shaping; the plan text itself comes from the
// oracle. Identical inputs produce byte-identical blocks so oracle calls
// are reproducible.
type PlanContext struct {
	GoalsBlock    string
	SpendingBlock string
	Goals         []model.Goal
	Summary       model.SpendingSummary
}

// BuildPlanContext shapes active goals and the spending summary for the
// planning oracle. Callers must check for zero goals before invoking any
// oracle; this function only formats.
func BuildPlanContext(goals []model.Goal, summary model.SpendingSummary) PlanContext {
	return PlanContext{
		GoalsBlock:    FormatGoalList(goals),
		SpendingBlock: FormatSpendingBreakdown(summary),
		Goals:         goals,
		Summary:       summary,
	}
}

// FormatGoalList renders one line per goal in deadline order.
func FormatGoalList(goals []model.Goal) string {
	lines := make([]string, 0, len(goals))
	for _, g := range goals {
		priority := g.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		lines = append(lines, fmt.Sprintf("- %s: %.2f by %s (priority: %s)",
			g.Name, g.TargetAmount, g.Deadline.Format("2006-01-02"), priority))
	}
	return strings.Join(lines, "\n")
}

// FormatSpendingBreakdown renders the trailing-window summary with
// category lines in first-seen order.
func FormatSpendingBreakdown(summary model.SpendingSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total spent: %.2f\n", summary.TotalSpent)
	fmt.Fprintf(&sb, "Average daily: %.2f\n", summary.AvgDaily)
	fmt.Fprintf(&sb, "Average monthly: %.2f\n", summary.AvgMonthly)
	fmt.Fprintf(&sb, "Transactions: %d\n", summary.TransactionCount)

	sb.WriteString("By category:")
	for _, category := range summary.CategoryOrder {
		fmt.Fprintf(&sb, "\n- %s: %.2f", category, summary.ByCategory[category])
	}

	return sb.String()
}
