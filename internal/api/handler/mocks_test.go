package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/auth"
	"github.com/ymurata/motivation-tracker/internal/domain"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	registerFunc func(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	loginFunc    func(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &domain.AuthResponse{
		User:  domain.UserResponse{ID: uuid.New(), Email: req.Email, Timezone: "UTC"},
		Token: "token",
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, domain.ErrInvalidCredentials
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	saveDayFunc func(ctx context.Context, userID uuid.UUID, date time.Time, req *domain.SaveDayRequest) (*domain.DailyRecord, error)
	loadDayFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayState, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.RecordListResponse, error)
}

func (m *MockRecordService) SaveDay(ctx context.Context, userID uuid.UUID, date time.Time, req *domain.SaveDayRequest) (*domain.DailyRecord, error) {
	if m.saveDayFunc != nil {
		return m.saveDayFunc(ctx, userID, date, req)
	}
	return &domain.DailyRecord{
		ID:         uuid.New(),
		UserID:     userID,
		RecordDate: date,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}

func (m *MockRecordService) LoadDay(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayState, error) {
	if m.loadDayFunc != nil {
		return m.loadDayFunc(ctx, userID, date)
	}
	return &domain.DayState{
		RecordDate: date.Format(domain.RecordDateLayout),
		Answers:    domain.AnswerSet{},
	}, nil
}

func (m *MockRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.RecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.RecordListResponse{
		Data:       []domain.DailyRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	computeStatsFunc func(ctx context.Context, userID uuid.UUID) (*domain.HistoryStats, error)
	chartSeriesFunc  func(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.ChartPoint, error)
}

func (m *MockStatsService) ComputeStats(ctx context.Context, userID uuid.UUID) (*domain.HistoryStats, error) {
	if m.computeStatsFunc != nil {
		return m.computeStatsFunc(ctx, userID)
	}
	return &domain.HistoryStats{}, nil
}

func (m *MockStatsService) ChartSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.ChartPoint, error) {
	if m.chartSeriesFunc != nil {
		return m.chartSeriesFunc(ctx, userID, windowDays)
	}
	return []domain.ChartPoint{}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{}, nil
}

// decorateRequest attaches chi URL params and the authenticated user id to a
// request, the way requests arrive through the router.
func decorateRequest(req *http.Request, tokenUserID uuid.UUID, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if tokenUserID != uuid.Nil {
		ctx = auth.WithUserID(ctx, tokenUserID)
	}
	return req.WithContext(ctx)
}
