package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultChartDays is the default window for the chart series.
const DefaultChartDays = 7

// StatsService derives aggregate statistics and chart data from history.
type StatsService interface {
	// ComputeStats summarizes the user's full record history.
	ComputeStats(ctx context.Context, userID uuid.UUID) (*domain.HistoryStats, error)
	// ChartSeries returns per-day derived metrics for the last windowDays
	// days, oldest first (chronological, ready for charting).
	ChartSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.ChartPoint, error)
}

type statsService struct {
	recordRepo repository.DailyRecordRepository
	userRepo   repository.UserRepository
}

func NewStatsService(recordRepo repository.DailyRecordRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
	}
}

func (s *statsService) ComputeStats(ctx context.Context, userID uuid.UUID) (*domain.HistoryStats, error) {
	tracer := otel.Tracer("motivation-tracker-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.ComputeStats",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Newest first; the trend window is taken from the head.
	records, err := s.recordRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	stats := domain.ComputeStats(records)
	span.SetAttributes(
		attribute.Int("stats.record_count", stats.RecordCount),
		attribute.Int("stats.recent_trend", stats.RecentTrend),
	)
	return &stats, nil
}

func (s *statsService) ChartSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.ChartPoint, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = DefaultChartDays
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -(windowDays - 1))

	records, err := s.recordRepo.ListSince(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	return domain.BuildChartSeries(records), nil
}
