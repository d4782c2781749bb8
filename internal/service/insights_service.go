package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/llm"
	"github.com/ymurata/motivation-tracker/internal/repository"
)

// RecentDaysWindow is how many recent days the insights prompt sees.
const RecentDaysWindow = 7

// InsightsService generates LLM-backed motivation insights.
type InsightsService interface {
	// Generate creates insights for a user from their stats and recent days.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	statsService StatsService
	llmClient    llm.InsightsLLM
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewInsightsService(
	statsService StatsService,
	llmClient llm.InsightsLLM,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		statsService: statsService,
		llmClient:    llmClient,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	stats, err := s.statsService.ComputeStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	recentDays, err := s.statsService.ChartSeries(ctx, userID, RecentDaysWindow)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Stats:          *stats,
		RecentDays:     recentDays,
		TotalQuestions: len(questions),
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Stats:    *stats,
		Insights: *llmOutput,
	}, nil
}
