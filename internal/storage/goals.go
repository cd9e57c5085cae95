package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lenahart/ledgerlens/internal/common"
	"github.com/lenahart/ledgerlens/internal/model"
)

// SaveGoal inserts or updates a savings goal.
func (s *SQLiteStorage) SaveGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	priority := goal.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO goals
		(id, user_id, goal_name, target_amount, deadline, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, COALESCE((SELECT created_at FROM goals WHERE id = ?), CURRENT_TIMESTAMP))
	`, goal.ID, goal.UserID, goal.Name, goal.TargetAmount, goal.Deadline,
		priority, goal.Status, goal.ID)
	if err != nil {
		return fmt.Errorf("failed to save goal %s: %w", goal.ID, err)
	}

	return nil
}

// GetActiveGoals returns a user's active goals sorted by ascending
// deadline, the order the planner presents them in.
func (s *SQLiteStorage) GetActiveGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	return s.queryGoals(ctx, userID, `
		SELECT id, user_id, goal_name, target_amount, deadline, priority, status, created_at
		FROM goals
		WHERE user_id = ? AND status = 'active'
		ORDER BY deadline ASC
	`)
}

// GetAllGoals returns every goal for a user, newest first.
func (s *SQLiteStorage) GetAllGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	return s.queryGoals(ctx, userID, `
		SELECT id, user_id, goal_name, target_amount, deadline, priority, status, created_at
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`)
}

// UpdateGoalStatus moves a goal through its lifecycle.
func (s *SQLiteStorage) UpdateGoalStatus(ctx context.Context, goalID string, status model.GoalStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(goalID, "goalID"); err != nil {
		return err
	}

	switch status {
	case model.GoalActive, model.GoalCompleted, model.GoalAbandoned:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidGoal, status)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE goals SET status = ? WHERE id = ?", status, goalID)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s: %w", goalID, common.ErrNotFound)
	}

	return nil
}

func (s *SQLiteStorage) queryGoals(ctx context.Context, userID, query string) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		var deadline, createdAt sql.NullTime
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount,
			&deadline, &g.Priority, &g.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		if deadline.Valid {
			g.Deadline = deadline.Time
		}
		if createdAt.Valid {
			g.CreatedAt = createdAt.Time
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}

	return goals, nil
}

// GetGoal returns a single goal by ID.
func (s *SQLiteStorage) GetGoal(ctx context.Context, goalID string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(goalID, "goalID"); err != nil {
		return nil, err
	}

	var g model.Goal
	var deadline, createdAt sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, goal_name, target_amount, deadline, priority, status, created_at
		FROM goals WHERE id = ?
	`, goalID).Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount,
		&deadline, &g.Priority, &g.Status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s: %w", goalID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load goal %s: %w", goalID, err)
	}
	if deadline.Valid {
		g.Deadline = deadline.Time
	}
	if createdAt.Valid {
		g.CreatedAt = createdAt.Time
	}

	return &g, nil
}
