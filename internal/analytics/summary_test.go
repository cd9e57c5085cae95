package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahart/ledgerlens/internal/model"
)

var summaryNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func expenseRow(id, date string, amount float64, category string) model.Transaction {
	return model.Transaction{
		ID:       id,
		Type:     model.TypeExpense,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestComputeSpendingSummaryWindow(t *testing.T) {
	rows := []model.Transaction{
		expenseRow("in1", "2024-03-15", 100, "Essentials"),
		expenseRow("in2", "2024-03-30", 50, "Food & Dining"),
		expenseRow("old", "2024-01-01", 999, "Essentials"),
		expenseRow("future", "2024-04-15", 999, "Essentials"),
		{ID: "income", Type: model.TypeIncome, Amount: 500, Date: "2024-03-20"},
		expenseRow("baddate", "soon", 999, "Essentials"),
	}

	summary := ComputeSpendingSummary(rows, 30, summaryNow)

	assert.InDelta(t, 150, summary.TotalSpent, 1e-9)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.InDelta(t, 5, summary.AvgDaily, 1e-9)
	assert.InDelta(t, 150, summary.AvgMonthly, 1e-9)
	assert.Equal(t, []string{"Essentials", "Food & Dining"}, summary.CategoryOrder)
}

func TestComputeSpendingSummaryTotalsMatchCategories(t *testing.T) {
	rows := []model.Transaction{
		expenseRow("a", "2024-03-10", 33.33, "Essentials"),
		expenseRow("b", "2024-03-11", 66.67, "Essentials"),
		expenseRow("c", "2024-03-12", 10.10, ""),
		expenseRow("d", "2024-03-13", 20.21, "Transportation"),
	}

	summary := ComputeSpendingSummary(rows, 30, summaryNow)

	var byCategoryTotal float64
	for _, v := range summary.ByCategory {
		byCategoryTotal += v
	}
	assert.InDelta(t, summary.TotalSpent, byCategoryTotal, 1e-6)

	// Empty category buckets under the default label.
	assert.InDelta(t, 10.10, summary.ByCategory[model.Uncategorized], 1e-9)

	// Sub-cent amounts must not drift: rounding categories and the total
	// independently would put 3x0.015 at 0.06 vs 0.05.
	subCent := []model.Transaction{
		expenseRow("s1", "2024-03-10", 0.015, "Essentials"),
		expenseRow("s2", "2024-03-11", 0.015, "Food & Dining"),
		expenseRow("s3", "2024-03-12", 0.015, "Transportation"),
	}

	summary = ComputeSpendingSummary(subCent, 30, summaryNow)

	byCategoryTotal = 0
	for _, v := range summary.ByCategory {
		byCategoryTotal += v
	}
	assert.InDelta(t, summary.TotalSpent, byCategoryTotal, 1e-6)
}

func TestComputeSpendingSummaryEmpty(t *testing.T) {
	summary := ComputeSpendingSummary(nil, 30, summaryNow)

	assert.Zero(t, summary.TotalSpent)
	assert.Zero(t, summary.TransactionCount)
	assert.Zero(t, summary.AvgDaily)
	assert.Empty(t, summary.ByCategory)
	assert.Empty(t, summary.CategoryOrder)
}

func TestComputeSpendingSummaryDefaultsWindow(t *testing.T) {
	rows := []model.Transaction{expenseRow("a", "2024-03-30", 90, "Essentials")}

	summary := ComputeSpendingSummary(rows, 0, summaryNow)

	assert.InDelta(t, 3, summary.AvgDaily, 1e-9)
}

func TestBuildPlanContextDeterministic(t *testing.T) {
	goals := []model.Goal{
		{Name: "Laptop", TargetAmount: 1200, Deadline: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Priority: model.PriorityHigh},
		{Name: "Trip", TargetAmount: 800, Deadline: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
	}
	summary := ComputeSpendingSummary([]model.Transaction{
		expenseRow("a", "2024-03-10", 120, "Essentials"),
	}, 30, summaryNow)

	first := BuildPlanContext(goals, summary)
	second := BuildPlanContext(goals, summary)

	assert.Equal(t, first.GoalsBlock, second.GoalsBlock)
	assert.Equal(t, first.SpendingBlock, second.SpendingBlock)
}

func TestFormatGoalList(t *testing.T) {
	goals := []model.Goal{
		{Name: "Laptop", TargetAmount: 1200, Deadline: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Priority: model.PriorityHigh},
		{Name: "Trip", TargetAmount: 800.5, Deadline: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := FormatGoalList(goals)

	want := "- Laptop: 1200.00 by 2024-06-01 (priority: high)\n" +
		"- Trip: 800.50 by 2024-09-01 (priority: medium)"
	assert.Equal(t, want, got)
}

func TestFormatSpendingBreakdown(t *testing.T) {
	summary := model.SpendingSummary{
		TotalSpent:       150,
		ByCategory:       map[string]float64{"Essentials": 100, "Food & Dining": 50},
		AvgDaily:         5,
		AvgMonthly:       150,
		TransactionCount: 2,
		CategoryOrder:    []string{"Essentials", "Food & Dining"},
	}

	got := FormatSpendingBreakdown(summary)

	require.Contains(t, got, "Total spent: 150.00")
	require.Contains(t, got, "Average daily: 5.00")
	assert.Equal(t,
		"Total spent: 150.00\nAverage daily: 5.00\nAverage monthly: 150.00\nTransactions: 2\nBy category:\n- Essentials: 100.00\n- Food & Dining: 50.00",
		got)
}
