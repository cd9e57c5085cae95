package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lenahart/ledgerlens/internal/common"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Visualize(r.Context(), userID)
	if err != nil {
		writeInternalError(w, "visualize", err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusNotFound
	}
	writeJSON(w, status, result)
}

func (s *Server) handleBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Plan(r.Context(), userID)
	if err != nil {
		writeInternalError(w, "budget", err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		// No goals is a client-state problem; a degraded oracle is ours.
		if result.Message != "" {
			status = http.StatusBadRequest
		} else {
			status = http.StatusBadGateway
		}
	}
	writeJSON(w, status, result)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Insights(r.Context(), userID)
	if err != nil {
		writeInternalError(w, "insights", err)
		return
	}

	status := http.StatusOK
	if !result.Success {
		if result.Error == "no transactions found" {
			status = http.StatusNotFound
		} else {
			status = http.StatusBadGateway
		}
	}
	writeJSON(w, status, result)
}

func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "userId query parameter is required"})
		return "", false
	}
	return userID, true
}

func writeInternalError(w http.ResponseWriter, route string, err error) {
	common.LogError(err, "Request failed", common.Fields{"route": route})
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
