package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahart/ledgerlens/internal/engine"
	"github.com/lenahart/ledgerlens/internal/model"
	"github.com/lenahart/ledgerlens/internal/service"
)

type stubStorage struct {
	records []model.RawRecord
	goals   []model.Goal
}

func (s *stubStorage) SaveTransactions(_ context.Context, _ []model.Transaction) error { return nil }

func (s *stubStorage) GetRawTransactions(_ context.Context, _ string, _ service.TransactionFilter) ([]model.RawRecord, error) {
	return s.records, nil
}

func (s *stubStorage) CountTransactions(_ context.Context, _ string) (int, error) {
	return len(s.records), nil
}

func (s *stubStorage) SaveGoal(_ context.Context, _ *model.Goal) error { return nil }

func (s *stubStorage) GetActiveGoals(_ context.Context, _ string) ([]model.Goal, error) {
	return s.goals, nil
}

func (s *stubStorage) GetAllGoals(_ context.Context, _ string) ([]model.Goal, error) {
	return s.goals, nil
}

func (s *stubStorage) UpdateGoalStatus(_ context.Context, _ string, _ model.GoalStatus) error {
	return nil
}

func (s *stubStorage) Migrate(_ context.Context) error { return nil }
func (s *stubStorage) Close() error                    { return nil }

func newTestServer(store *stubStorage, oracle *engine.MockOracle) *httptest.Server {
	eng := engine.New(store, oracle, engine.Options{})
	srv := NewServer(":0", eng)
	return httptest.NewServer(srv.http.Handler)
}

func TestHealthRoute(t *testing.T) {
	ts := newTestServer(&stubStorage{}, engine.NewMockOracle())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestVisualizeRequiresUserID(t *testing.T) {
	ts := newTestServer(&stubStorage{}, engine.NewMockOracle())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/visualize")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVisualizeSuccess(t *testing.T) {
	store := &stubStorage{records: []model.RawRecord{
		{"_id": "t1", "userId": "u1", "type": "expense", "amount": 10.0, "date": "2024-01-05"},
	}}
	oracle := engine.NewMockOracle()
	oracle.CategorizationReply = `{"t1": "Essentials"}`

	ts := newTestServer(store, oracle)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/visualize?userId=u1")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result engine.VisualizationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Len(t, result.Visualizations, 5)
	assert.Equal(t, "Essentials", result.Categorization["t1"])
}

func TestVisualizeNoTransactions(t *testing.T) {
	ts := newTestServer(&stubStorage{}, engine.NewMockOracle())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/visualize?userId=u1")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBudgetNoActiveGoals(t *testing.T) {
	store := &stubStorage{records: []model.RawRecord{
		{"_id": "t1", "userId": "u1", "type": "expense", "amount": 10.0, "date": "2024-01-05"},
	}}

	ts := newTestServer(store, engine.NewMockOracle())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/budget?userId=u1")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var result engine.PlanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestInsightsRoute(t *testing.T) {
	store := &stubStorage{records: []model.RawRecord{
		{"_id": "t1", "userId": "u1", "type": "expense", "amount": 10.0, "date": "2024-01-05"},
	}}
	oracle := engine.NewMockOracle()
	oracle.InsightsReply = `{"keyInsights": ["x"], "alerts": [], "suggestions": ["y"]}`

	ts := newTestServer(store, oracle)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/insights?userId=u1")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result engine.InsightsResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, []string{"x"}, result.KeyInsights)
}
