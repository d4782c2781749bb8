package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/service"
)

func TestStatsHandler_GetStats(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		tokenUserID    uuid.UUID
		mockService    *MockStatsService
		wantStatusCode int
	}{
		{
			name:        "with history",
			tokenUserID: userID,
			mockService: &MockStatsService{
				computeStatsFunc: func(ctx context.Context, id uuid.UUID) (*domain.HistoryStats, error) {
					return &domain.HistoryStats{AvgScore: 3.5, MaxScore: 6, RecordCount: 12}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "token for another user",
			tokenUserID:    uuid.New(),
			mockService:    &MockStatsService{},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:        "unknown user",
			tokenUserID: userID,
			mockService: &MockStatsService{
				computeStatsFunc: func(ctx context.Context, id uuid.UUID) (*domain.HistoryStats, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewStatsHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/records/stats", nil)
			req = decorateRequest(req, tt.tokenUserID, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.GetStats(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetStats() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestStatsHandler_GetStats_NullAvgSleepScore(t *testing.T) {
	userID := uuid.New()
	mockService := &MockStatsService{
		computeStatsFunc: func(ctx context.Context, id uuid.UUID) (*domain.HistoryStats, error) {
			return &domain.HistoryStats{RecordCount: 2}, nil
		},
	}
	handler := NewStatsHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/records/stats", nil)
	req = decorateRequest(req, userID, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.GetStats(rec, req)

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// Absent sleep data must serialize as null, not 0.
	if v, present := body["avg_sleep_score"]; !present || v != nil {
		t.Errorf("avg_sleep_score = %v (present=%v), want explicit null", v, present)
	}
}

func TestStatsHandler_GetChart(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		wantDays       int
		wantStatusCode int
	}{
		{
			name:           "default window",
			query:          "",
			wantDays:       service.DefaultChartDays,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "explicit window",
			query:          "?days=30",
			wantDays:       30,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid window",
			query:          "?days=0",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "non-numeric window",
			query:          "?days=week",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDays int
			mockService := &MockStatsService{
				chartSeriesFunc: func(ctx context.Context, id uuid.UUID, windowDays int) ([]domain.ChartPoint, error) {
					gotDays = windowDays
					return []domain.ChartPoint{}, nil
				},
			}
			handler := NewStatsHandler(mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/records/chart"+tt.query, nil)
			req = decorateRequest(req, userID, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.GetChart(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetChart() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK && gotDays != tt.wantDays {
				t.Errorf("window days = %d, want %d", gotDays, tt.wantDays)
			}
		})
	}
}
