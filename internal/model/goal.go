package model

import "time"

// GoalPriority orders goals when the plan is assembled.
type GoalPriority string

// Goal priorities.
const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

// GoalStatus tracks a goal's lifecycle. Only active goals participate in
// planning.
type GoalStatus string

// Goal statuses.
const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// Goal is a savings goal snapshot read once per planning run.
type Goal struct {
	ID           string       `json:"_id"`
	UserID       string       `json:"userId"`
	Name         string       `json:"goalName"`
	TargetAmount float64      `json:"targetAmount"`
	Deadline     time.Time    `json:"deadline"`
	Priority     GoalPriority `json:"priority"`
	Status       GoalStatus   `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}
