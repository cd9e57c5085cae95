// Package engine orchestrates the visualization, planning, and insights
// pipelines: one store read, at most one oracle call, and a bounded
// sequence of in-memory aggregations per run.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lenahart/ledgerlens/internal/analytics"
	"github.com/lenahart/ledgerlens/internal/categorize"
	"github.com/lenahart/ledgerlens/internal/common"
	"github.com/lenahart/ledgerlens/internal/llm"
	"github.com/lenahart/ledgerlens/internal/normalize"
	"github.com/lenahart/ledgerlens/internal/service"
	"github.com/lenahart/ledgerlens/internal/viz"
)

// DefaultOracleTimeout bounds every oracle call. On expiry the pipeline
// proceeds with degraded data instead of failing the run.
const DefaultOracleTimeout = 30 * time.Second

// Options tunes an Engine beyond its collaborators.
type Options struct {
	WindowDays    int
	OracleTimeout time.Duration
	Retry         service.RetryOptions
	Now           func() time.Time
}

// Engine runs the analytics pipelines over a store snapshot. Each run is
// synchronous and shares no mutable state with concurrent runs.
type Engine struct {
	storage       service.Storage
	oracle        Oracle
	now           func() time.Time
	retryOpts     service.RetryOptions
	windowDays    int
	oracleTimeout time.Duration
}

// New creates a pipeline engine.
func New(storage service.Storage, oracle Oracle, opts Options) *Engine {
	if opts.WindowDays <= 0 {
		opts.WindowDays = analytics.DefaultWindowDays
	}
	if opts.OracleTimeout <= 0 {
		opts.OracleTimeout = DefaultOracleTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		storage:       storage,
		oracle:        oracle,
		windowDays:    opts.WindowDays,
		oracleTimeout: opts.OracleTimeout,
		retryOpts:     opts.Retry,
		now:           opts.Now,
	}
}

// oracleGenerate runs one oracle call under the configured timeout,
// retrying only failures worth retrying (rate limits, timeouts).
func (e *Engine) oracleGenerate(ctx context.Context, prompt string) (string, error) {
	octx, cancel := context.WithTimeout(ctx, e.oracleTimeout)
	defer cancel()

	var text string
	err := common.WithRetry(octx, func() error {
		reply, genErr := e.oracle.Generate(octx, prompt)
		if genErr != nil {
			if !common.IsRetryable(genErr) {
				return &common.RetryableError{Err: genErr, Retryable: false}
			}
			return genErr
		}
		text = reply
		return nil
	}, e.retryOpts)

	return text, err
}

// Visualize builds the five chart datasets plus the merged categorization
// for a user. The only fatal condition is an unreachable store; an empty
// transaction set or a degraded oracle produce a value, not an error.
func (e *Engine) Visualize(ctx context.Context, userID string) (*VisualizationResult, error) {
	raw, err := e.storage.GetRawTransactions(ctx, userID, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(raw) == 0 {
		return &VisualizationResult{
			Success: false,
			UserID:  userID,
			Error:   common.ErrNoTransactions.Error(),
		}, nil
	}

	rows := normalize.Normalize(raw)

	exportCSV, err := normalize.Flatten(rows).CSV()
	if err != nil {
		return nil, fmt.Errorf("failed to build export artifact: %w", err)
	}

	external := e.fetchCategoryMap(ctx, exportCSV)
	merged := categorize.Merge(rows, external)

	return &VisualizationResult{
		Success:          true,
		UserID:           userID,
		TransactionCount: len(rows),
		Visualizations:   viz.BuildAll(rows, merged),
		Categorization:   merged,
	}, nil
}

// Plan shapes active goals and the trailing-window spending summary, then
// asks the oracle for the narrative plan. Zero active goals short-circuits
// before any oracle call.
func (e *Engine) Plan(ctx context.Context, userID string) (*PlanResult, error) {
	goals, err := e.storage.GetActiveGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	if len(goals) == 0 {
		return &PlanResult{
			Success: false,
			Message: common.ErrNoActiveGoals.Error() + "; create a goal first",
		}, nil
	}

	raw, err := e.storage.GetRawTransactions(ctx, userID, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	rows := normalize.Normalize(raw)
	summary := analytics.ComputeSpendingSummary(rows, e.windowDays, e.now())
	planCtx := analytics.BuildPlanContext(goals, summary)

	exportCSV, err := normalize.Flatten(rows).CSV()
	if err != nil {
		slog.Warn("Failed to build export artifact, planning without it", "error", err)
		exportCSV = "transaction data not available"
	}

	result := &PlanResult{
		GoalsCount:      len(goals),
		Goals:           goals,
		SpendingSummary: &summary,
	}

	text, err := e.oracleGenerate(ctx, llm.PlanPrompt(planCtx.GoalsBlock, planCtx.SpendingBlock, exportCSV))
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			slog.Warn("Planning oracle degraded", "error", err)
		}
		result.Error = "failed to generate plan"
		return result, nil
	}

	result.Success = true
	result.Plan = strings.TrimSpace(text)
	return result, nil
}

// Insights asks the oracle for spending insights over the export content
// and validates the structured reply.
func (e *Engine) Insights(ctx context.Context, userID string) (*InsightsResult, error) {
	raw, err := e.storage.GetRawTransactions(ctx, userID, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(raw) == 0 {
		return &InsightsResult{
			Success: false,
			Error:   common.ErrNoTransactions.Error(),
		}, nil
	}

	rows := normalize.Normalize(raw)
	exportCSV, err := normalize.Flatten(rows).CSV()
	if err != nil {
		return nil, fmt.Errorf("failed to build export artifact: %w", err)
	}

	text, err := e.oracleGenerate(ctx, llm.InsightsPrompt(exportCSV))
	if err != nil {
		slog.Warn("Insights oracle degraded", "error", err)
		return &InsightsResult{Success: false, Error: "failed to generate insights"}, nil
	}

	insights, err := llm.ParseInsights(text)
	if err != nil {
		slog.Warn("Insights response unparseable", "error", err)
		return &InsightsResult{Success: false, Error: err.Error()}, nil
	}

	return &InsightsResult{
		Success:     true,
		KeyInsights: insights.KeyInsights,
		Alerts:      insights.Alerts,
		Suggestions: insights.Suggestions,
	}, nil
}

// Export materializes the canonical tabular artifact for a user.
func (e *Engine) Export(ctx context.Context, userID string) (*normalize.Table, error) {
	raw, err := e.storage.GetRawTransactions(ctx, userID, service.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return normalize.Flatten(normalize.Normalize(raw)), nil
}

// fetchCategoryMap asks the oracle to label the exported rows. Every
// failure mode (timeout, transport error, unparseable output) degrades to
// an empty map: downstream rows fall back to Uncategorized.
func (e *Engine) fetchCategoryMap(ctx context.Context, exportCSV string) map[string]string {
	text, err := e.oracleGenerate(ctx, llm.CategorizationPrompt(exportCSV))
	if err != nil {
		slog.Warn("Categorization oracle degraded, labeling all rows Uncategorized", "error", err)
		return map[string]string{}
	}

	labels := llm.ParseCategoryMap(text)
	if len(labels) == 0 {
		slog.Warn("Categorization oracle returned no usable labels")
	} else {
		common.LogInfo("Categorization received", common.Fields{"labels": len(labels)})
	}

	return labels
}
