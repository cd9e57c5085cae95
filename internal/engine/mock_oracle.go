package engine

import (
	"context"
	"strings"
	"sync"
)

// MockOracle is a test implementation of the Oracle interface. It returns
// canned replies keyed by prompt kind and records every call for
// verification.
type MockOracle struct {
	CategorizationReply string
	PlanReply           string
	InsightsReply       string
	Err                 error

	calls []string
	mu    sync.Mutex
}

// NewMockOracle creates a mock oracle with empty replies.
func NewMockOracle() *MockOracle {
	return &MockOracle{calls: make([]string, 0)}
}

// Generate dispatches on markers the real prompts always contain.
func (m *MockOracle) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	switch {
	case strings.Contains(prompt, "savings plan"):
		return m.PlanReply, nil
	case strings.Contains(prompt, "spending patterns"):
		return m.InsightsReply, nil
	default:
		return m.CategorizationReply, nil
	}
}

// Calls returns a copy of all recorded prompts.
func (m *MockOracle) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of Generate invocations.
func (m *MockOracle) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
