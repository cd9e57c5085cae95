// Package viz builds the five chart-ready visualization datasets from
// canonical rows. Every builder is pure and total: empty input yields an
// empty-but-valid dataset, never an error.
package viz

import (
	"sort"

	"github.com/lenahart/ledgerlens/internal/model"
)

// Display palettes, matching the renderer's defaults.
var (
	piePalette      = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}
	doughnutPalette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF"}

	lineBorderColor = "#36A2EB"
	lineFillColor   = "rgba(54, 162, 235, 0.1)"
	barColor        = "#FF6384"
	incomeColor     = "#4BC0C0"
	expenseColor    = "#FF6384"
)

// topCategoriesLimit bounds the bar chart to the heaviest spenders.
const topCategoriesLimit = 5

// BuildAll produces the five datasets in their fixed response order.
func BuildAll(rows []model.Transaction, categories model.CategoryMap) []model.Dataset {
	return []model.Dataset{
		CategoryDistribution(rows, categories),
		MonthlySpendingTrend(rows),
		TopCategoriesByAmount(rows, categories),
		PaymentMethodDistribution(rows),
		IncomeVsExpense(rows),
	}
}

// CategoryDistribution counts rows per merged category, sorted by
// descending count (pie chart).
func CategoryDistribution(rows []model.Transaction, categories model.CategoryMap) model.Dataset {
	counts := newTally()
	for i := range rows {
		label, ok := categories[rows[i].ID]
		if !ok {
			label = model.Uncategorized
		}
		counts.add(label, 1)
	}

	labels, data := counts.sortedByValueDesc()

	return model.Dataset{
		Type:  model.ChartPie,
		Title: "Transaction Count by Category",
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.Series{{
				Data:            data,
				BackgroundColor: piePalette,
			}},
		},
	}
}

// MonthlySpendingTrend sums expense amounts per calendar month, sorted by
// ascending month key (line chart). This is the one builder allowed to
// drop rows: a missing or unparseable date excludes the row here only.
func MonthlySpendingTrend(rows []model.Transaction) model.Dataset {
	monthly := newTally()
	for i := range rows {
		row := &rows[i]
		if row.Type != model.TypeExpense {
			continue
		}
		ts, ok := row.DateTime()
		if !ok {
			continue
		}
		monthly.add(ts.Format("2006-01"), row.Amount)
	}

	labels, data := monthly.sortedByKeyAsc()

	return model.Dataset{
		Type:  model.ChartLine,
		Title: "Monthly Spending Trend",
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.Series{{
				Label:           "Total Spending",
				Data:            data,
				BorderColor:     lineBorderColor,
				BackgroundColor: lineFillColor,
				Tension:         0.4,
			}},
		},
	}
}

// TopCategoriesByAmount sums expense amounts per merged category, sorted
// by descending amount and truncated to the top five (bar chart).
func TopCategoriesByAmount(rows []model.Transaction, categories model.CategoryMap) model.Dataset {
	amounts := newTally()
	for i := range rows {
		row := &rows[i]
		if row.Type != model.TypeExpense {
			continue
		}
		label, ok := categories[row.ID]
		if !ok {
			label = model.Uncategorized
		}
		amounts.add(label, row.Amount)
	}

	labels, data := amounts.sortedByValueDesc()
	if len(labels) > topCategoriesLimit {
		labels = labels[:topCategoriesLimit]
		data = data[:topCategoriesLimit]
	}

	return model.Dataset{
		Type:  model.ChartBar,
		Title: "Top 5 Spending Categories (by Amount)",
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.Series{{
				Label:           "Total Amount",
				Data:            data,
				BackgroundColor: barColor,
			}},
		},
	}
}

// PaymentMethodDistribution counts rows per payment method, sorted by
// descending count (doughnut chart). Absent methods fall under "Unknown".
func PaymentMethodDistribution(rows []model.Transaction) model.Dataset {
	methods := newTally()
	for i := range rows {
		method := rows[i].PaymentMethod
		if method == "" {
			method = "Unknown"
		}
		methods.add(method, 1)
	}

	labels, data := methods.sortedByValueDesc()

	return model.Dataset{
		Type:  model.ChartDoughnut,
		Title: "Payment Method Distribution",
		Data: model.ChartData{
			Labels: labels,
			Datasets: []model.Series{{
				Data:            data,
				BackgroundColor: doughnutPalette,
			}},
		},
	}
}

// IncomeVsExpense totals amounts per transaction type as two fixed series
// over a single "Total" label (grouped bar chart).
func IncomeVsExpense(rows []model.Transaction) model.Dataset {
	var income, expense float64
	for i := range rows {
		switch rows[i].Type {
		case model.TypeIncome:
			income += rows[i].Amount
		case model.TypeExpense:
			expense += rows[i].Amount
		}
	}

	return model.Dataset{
		Type:  model.ChartBar,
		Title: "Income vs Expense",
		Data: model.ChartData{
			Labels: []string{"Total"},
			Datasets: []model.Series{
				{
					Label:           "Income",
					Data:            []float64{income},
					BackgroundColor: incomeColor,
				},
				{
					Label:           "Expense",
					Data:            []float64{expense},
					BackgroundColor: expenseColor,
				},
			},
		},
	}
}

// tally accumulates values by label while remembering first-seen order,
// so ties keep insertion order under stable sorting.
type tally struct {
	values map[string]float64
	keys   []string
}

func newTally() *tally {
	return &tally{values: make(map[string]float64)}
}

func (t *tally) add(key string, v float64) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] += v
}

func (t *tally) sortedByValueDesc() ([]string, []float64) {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return t.values[keys[i]] > t.values[keys[j]]
	})
	return keys, t.valuesFor(keys)
}

func (t *tally) sortedByKeyAsc() ([]string, []float64) {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys, t.valuesFor(keys)
}

func (t *tally) valuesFor(keys []string) []float64 {
	data := make([]float64, 0, len(keys))
	for _, k := range keys {
		data = append(data, t.values[k])
	}
	return data
}
