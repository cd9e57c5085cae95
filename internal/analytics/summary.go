// Package analytics computes spending aggregates and the deterministic
// text blocks the planning oracle receives.
package analytics

import (
	"math"
	"time"

	"github.com/lenahart/ledgerlens/internal/model"
)

// DefaultWindowDays is the trailing lookback used for spending aggregates.
const DefaultWindowDays = 30

// ComputeSpendingSummary aggregates expense rows dated within
// [now - windowDays, now]. A row whose date cannot be parsed never lands
// inside the window. An empty match yields a zero summary, not an error.
func ComputeSpendingSummary(rows []model.Transaction, windowDays int, now time.Time) model.SpendingSummary {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	byCategory := make(map[string]float64)
	var order []string
	var total float64
	count := 0

	for i := range rows {
		row := &rows[i]
		if row.Type != model.TypeExpense {
			continue
		}
		ts, ok := row.DateTime()
		if !ok || ts.Before(cutoff) || ts.After(now) {
			continue
		}

		category := row.Category
		if category == "" {
			category = model.Uncategorized
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] += row.Amount
		total += row.Amount
		count++
	}

	return model.SpendingSummary{
		TotalSpent:       total,
		ByCategory:       byCategory,
		AvgDaily:         round2(total / float64(windowDays)),
		AvgMonthly:       round2(total),
		TransactionCount: count,
		CategoryOrder:    order,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
