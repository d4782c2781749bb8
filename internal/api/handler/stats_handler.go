package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/service"
	"github.com/ymurata/motivation-tracker/pkg/problem"
)

// StatsHandler serves derived statistics and chart data.
type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /v1/users/{userId}/records/stats
// @Summary Get history statistics
// @Description Summarize the full record history: average and maximum score, recent trend, average sleep score.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.HistoryStats
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.ComputeStats(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute statistics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetChart handles GET /v1/users/{userId}/records/chart
// @Summary Get chart series
// @Description Per-day derived metrics for the last N days, oldest first. Days without a record are omitted.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User UUID" format(uuid)
// @Param days query integer false "Window size in days" default(7) minimum(1) maximum(365)
// @Success 200 {array} domain.ChartPoint
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records/chart [get]
func (h *StatsHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizedUserID(w, r)
	if !ok {
		return
	}

	days := service.DefaultChartDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > 365 {
			problem.BadRequest("days must be between 1 and 365").Write(w)
			return
		}
		days = parsed
	}

	points, err := h.service.ChartSeries(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build chart series").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}
