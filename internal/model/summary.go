package model

// SpendingSummary aggregates expense rows inside the trailing window.
// The sum of ByCategory values equals TotalSpent within float tolerance.
type SpendingSummary struct {
	TotalSpent       float64            `json:"totalSpent"`
	ByCategory       map[string]float64 `json:"byCategory"`
	AvgDaily         float64            `json:"avgDaily"`
	AvgMonthly       float64            `json:"avgMonthly"`
	TransactionCount int                `json:"transactionCount"`

	// CategoryOrder preserves the first-seen order of ByCategory keys so
	// downstream text rendering is reproducible across runs.
	CategoryOrder []string `json:"-"`
}
