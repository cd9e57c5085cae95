package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahart/ledgerlens/internal/model"
)

func row(id, txnType, date string, amount float64, paymentMethod string) model.Transaction {
	return model.Transaction{
		ID:            id,
		Type:          txnType,
		Amount:        amount,
		Date:          date,
		PaymentMethod: paymentMethod,
	}
}

func TestBuildAllOrderAndTitles(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeExpense, "2024-01-05", 100, "card"),
		row("b", model.TypeExpense, "2024-02-10", 50, "cash"),
	}

	datasets := BuildAll(rows, model.CategoryMap{})

	require.Len(t, datasets, 5)
	assert.Equal(t, "Transaction Count by Category", datasets[0].Title)
	assert.Equal(t, model.ChartPie, datasets[0].Type)
	assert.Equal(t, "Monthly Spending Trend", datasets[1].Title)
	assert.Equal(t, model.ChartLine, datasets[1].Type)
	assert.Equal(t, "Top 5 Spending Categories (by Amount)", datasets[2].Title)
	assert.Equal(t, model.ChartBar, datasets[2].Type)
	assert.Equal(t, "Payment Method Distribution", datasets[3].Title)
	assert.Equal(t, model.ChartDoughnut, datasets[3].Type)
	assert.Equal(t, "Income vs Expense", datasets[4].Title)
	assert.Equal(t, model.ChartBar, datasets[4].Type)
}

func TestCategoryDistribution(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeExpense, "2024-01-05", 100, ""),
		row("b", model.TypeExpense, "2024-02-10", 50, ""),
	}

	ds := CategoryDistribution(rows, model.CategoryMap{})

	assert.Equal(t, []string{model.Uncategorized}, ds.Data.Labels)
	require.Len(t, ds.Data.Datasets, 1)
	assert.Equal(t, []float64{2}, ds.Data.Datasets[0].Data)
	assert.Equal(t, piePalette, ds.Data.Datasets[0].BackgroundColor)
}

func TestCategoryDistributionSortsByCountDesc(t *testing.T) {
	rows := []model.Transaction{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	categories := model.CategoryMap{
		"a": "Essentials",
		"b": "Food & Dining",
		"c": "Food & Dining",
	}

	ds := CategoryDistribution(rows, categories)

	assert.Equal(t, []string{"Food & Dining", "Essentials"}, ds.Data.Labels)
	assert.Equal(t, []float64{2, 1}, ds.Data.Datasets[0].Data)
}

func TestCategoryDistributionTieKeepsFirstSeenOrder(t *testing.T) {
	rows := []model.Transaction{
		{ID: "a"}, {ID: "b"},
	}
	// Both categories count 1; "Transportation" is seen first and must
	// stay first despite sorting alphabetically after "Essentials".
	categories := model.CategoryMap{
		"a": "Transportation",
		"b": "Essentials",
	}

	ds := CategoryDistribution(rows, categories)

	assert.Equal(t, []string{"Transportation", "Essentials"}, ds.Data.Labels)
}

func TestMonthlySpendingTrend(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeExpense, "2024-02-10", 50, ""),
		row("b", model.TypeExpense, "2024-01-05", 100, ""),
		row("c", model.TypeExpense, "2024-01-20", 25, ""),
		row("d", model.TypeIncome, "2024-01-21", 999, ""),
	}

	ds := MonthlySpendingTrend(rows)

	assert.Equal(t, []string{"2024-01", "2024-02"}, ds.Data.Labels)
	require.Len(t, ds.Data.Datasets, 1)
	series := ds.Data.Datasets[0]
	assert.Equal(t, "Total Spending", series.Label)
	assert.Equal(t, []float64{125, 50}, series.Data)
	assert.Equal(t, "#36A2EB", series.BorderColor)
	assert.Equal(t, "rgba(54, 162, 235, 0.1)", series.BackgroundColor)
	assert.InDelta(t, 0.4, series.Tension, 1e-9)
}

func TestMonthlySpendingTrendDropsUnparseableDates(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeExpense, "2024-01-05", 100, ""),
		row("b", model.TypeExpense, "later", 999, ""),
		row("c", model.TypeExpense, "", 999, ""),
	}

	ds := MonthlySpendingTrend(rows)

	assert.Equal(t, []string{"2024-01"}, ds.Data.Labels)
	assert.Equal(t, []float64{100}, ds.Data.Datasets[0].Data)

	// The same malformed rows still count everywhere else.
	pie := CategoryDistribution(rows, model.CategoryMap{})
	assert.Equal(t, []float64{3}, pie.Data.Datasets[0].Data)
}

func TestTopCategoriesByAmountLimit(t *testing.T) {
	rows := make([]model.Transaction, 0, 7)
	categories := model.CategoryMap{}
	labels := []string{
		"Food & Dining", "Essentials", "Academics",
		"Luxury & Entertainment", "Transportation", "Health & Wellness",
		model.Uncategorized,
	}
	for i, label := range labels {
		id := string(rune('a' + i))
		rows = append(rows, row(id, model.TypeExpense, "2024-01-05", float64(100-i*10), ""))
		categories[id] = label
	}

	ds := TopCategoriesByAmount(rows, categories)

	require.Len(t, ds.Data.Labels, 5)
	assert.Equal(t, []string{
		"Food & Dining", "Essentials", "Academics",
		"Luxury & Entertainment", "Transportation",
	}, ds.Data.Labels)
	assert.Equal(t, []float64{100, 90, 80, 70, 60}, ds.Data.Datasets[0].Data)
	assert.Equal(t, "#FF6384", ds.Data.Datasets[0].BackgroundColor)
}

func TestTopCategoriesExcludesIncome(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeIncome, "2024-01-05", 1000, ""),
		row("b", model.TypeExpense, "2024-01-06", 40, ""),
	}

	ds := TopCategoriesByAmount(rows, model.CategoryMap{"a": "Essentials", "b": "Essentials"})

	assert.Equal(t, []string{"Essentials"}, ds.Data.Labels)
	assert.Equal(t, []float64{40}, ds.Data.Datasets[0].Data)
}

func TestPaymentMethodDistribution(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeExpense, "2024-01-05", 10, "card"),
		row("b", model.TypeExpense, "2024-01-06", 10, "card"),
		row("c", model.TypeExpense, "2024-01-07", 10, ""),
	}

	ds := PaymentMethodDistribution(rows)

	assert.Equal(t, []string{"card", "Unknown"}, ds.Data.Labels)
	assert.Equal(t, []float64{2, 1}, ds.Data.Datasets[0].Data)
	assert.Equal(t, doughnutPalette, ds.Data.Datasets[0].BackgroundColor)
}

func TestIncomeVsExpense(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeIncome, "2024-01-05", 1000, ""),
		row("b", model.TypeExpense, "2024-01-06", 300, ""),
		row("c", model.TypeExpense, "2024-01-07", 200, ""),
		{ID: "d", Type: "transfer", Amount: 999},
	}

	ds := IncomeVsExpense(rows)

	assert.Equal(t, []string{"Total"}, ds.Data.Labels)
	require.Len(t, ds.Data.Datasets, 2)
	assert.Equal(t, "Income", ds.Data.Datasets[0].Label)
	assert.Equal(t, []float64{1000}, ds.Data.Datasets[0].Data)
	assert.Equal(t, "#4BC0C0", ds.Data.Datasets[0].BackgroundColor)
	assert.Equal(t, "Expense", ds.Data.Datasets[1].Label)
	assert.Equal(t, []float64{500}, ds.Data.Datasets[1].Data)
	assert.Equal(t, "#FF6384", ds.Data.Datasets[1].BackgroundColor)
}

func TestBuildersEmptyInput(t *testing.T) {
	datasets := BuildAll(nil, nil)

	require.Len(t, datasets, 5)
	for _, ds := range datasets[:4] {
		assert.Empty(t, ds.Data.Labels, ds.Title)
		require.NotEmpty(t, ds.Data.Datasets, ds.Title)
		assert.Empty(t, ds.Data.Datasets[0].Data, ds.Title)
		assert.NotNil(t, ds.Data.Labels, ds.Title)
		assert.NotNil(t, ds.Data.Datasets[0].Data, ds.Title)
	}

	// Income vs expense always carries its fixed shape.
	assert.Equal(t, []float64{0}, datasets[4].Data.Datasets[0].Data)
	assert.Equal(t, []float64{0}, datasets[4].Data.Datasets[1].Data)
}

func TestBuildersAreIdempotent(t *testing.T) {
	rows := []model.Transaction{
		row("a", model.TypeExpense, "2024-01-05", 100, "card"),
		row("b", model.TypeIncome, "2024-02-10", 50, "cash"),
	}
	categories := model.CategoryMap{"a": "Essentials", "b": model.Uncategorized}

	first := BuildAll(rows, categories)
	second := BuildAll(rows, categories)

	assert.Equal(t, first, second)
}
