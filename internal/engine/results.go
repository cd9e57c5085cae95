package engine

import (
	"github.com/lenahart/ledgerlens/internal/model"
)

// VisualizationResult is the response object of the visualization
// pipeline. Failures are signaled through Success and Error, never raised.
type VisualizationResult struct {
	Success          bool              `json:"success"`
	UserID           string            `json:"userId,omitempty"`
	TransactionCount int               `json:"transactionCount,omitempty"`
	Visualizations   []model.Dataset   `json:"visualizations,omitempty"`
	Categorization   model.CategoryMap `json:"categorization,omitempty"`
	Error            string            `json:"error,omitempty"`
}

// PlanResult is the response object of the planning pipeline.
type PlanResult struct {
	Success         bool                   `json:"success"`
	GoalsCount      int                    `json:"goalsCount,omitempty"`
	Goals           []model.Goal           `json:"goals,omitempty"`
	SpendingSummary *model.SpendingSummary `json:"spendingSummary,omitempty"`
	Plan            string                 `json:"plan,omitempty"`
	Message         string                 `json:"message,omitempty"`
	Error           string                 `json:"error,omitempty"`
}

// InsightsResult is the response object of the insights pipeline.
type InsightsResult struct {
	Success     bool     `json:"success"`
	KeyInsights []string `json:"keyInsights,omitempty"`
	Alerts      []string `json:"alerts,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Error       string   `json:"error,omitempty"`
}
