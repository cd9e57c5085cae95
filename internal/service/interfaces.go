// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/lenahart/ledgerlens/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      string // "income", "expense", or empty for both
	Limit     int
}

// Storage defines the contract for the persistence layer. All queries used
// by the pipelines are read-only snapshots; writes exist for the importer
// and the goals CLI.
type Storage interface {
	// Transaction operations.
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetRawTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]model.RawRecord, error)
	CountTransactions(ctx context.Context, userID string) (int, error)

	// Goal operations. Active goals are returned sorted by ascending deadline.
	SaveGoal(ctx context.Context, goal *model.Goal) error
	GetActiveGoals(ctx context.Context, userID string) ([]model.Goal, error)
	GetAllGoals(ctx context.Context, userID string) ([]model.Goal, error)
	UpdateGoalStatus(ctx context.Context, goalID string, status model.GoalStatus) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
