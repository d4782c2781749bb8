package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/pkg/pagination"
)

// MockDailyRecordRepository is a mock implementation of DailyRecordRepository
type MockDailyRecordRepository struct {
	records map[uuid.UUID]*domain.DailyRecord
	answers map[uuid.UUID][]domain.Answer

	upsertErr error
	deleteErr error
	insertErr error
	listErr   error
}

func NewMockDailyRecordRepository() *MockDailyRecordRepository {
	return &MockDailyRecordRepository{
		records: make(map[uuid.UUID]*domain.DailyRecord),
		answers: make(map[uuid.UUID][]domain.Answer),
	}
}

func (m *MockDailyRecordRepository) Upsert(ctx context.Context, record *domain.DailyRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for _, existing := range m.records {
		if existing.UserID == record.UserID && existing.RecordDate.Equal(record.RecordDate) {
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
			record.UpdatedAt = time.Now()
			m.records[existing.ID] = record
			return nil
		}
	}
	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	m.records[record.ID] = record
	return nil
}

func (m *MockDailyRecordRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for _, record := range m.records {
		if record.UserID == userID && record.RecordDate.Equal(date) {
			copied := *record
			copied.Answers = append([]domain.Answer(nil), m.answers[record.ID]...)
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDailyRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.DailyRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	records := m.sortedDesc(userID)

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			filtered := records[:0]
			for _, r := range records {
				if r.RecordDate.Before(cursor.RecordDate) {
					filtered = append(filtered, r)
				}
			}
			records = filtered
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(records) > limit+1 {
		records = records[:limit+1]
	}
	return records, nil
}

func (m *MockDailyRecordRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sortedDesc(userID), nil
}

func (m *MockDailyRecordRepository) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DailyRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	desc := m.sortedDesc(userID)
	var asc []domain.DailyRecord
	for i := len(desc) - 1; i >= 0; i-- {
		if !desc[i].RecordDate.Before(from) {
			asc = append(asc, desc[i])
		}
	}
	return asc, nil
}

func (m *MockDailyRecordRepository) DeleteAnswers(ctx context.Context, recordID uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.answers, recordID)
	return nil
}

func (m *MockDailyRecordRepository) InsertAnswers(ctx context.Context, answers []domain.Answer) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, a := range answers {
		m.answers[a.DailyRecordID] = append(m.answers[a.DailyRecordID], a)
	}
	return nil
}

func (m *MockDailyRecordRepository) sortedDesc(userID uuid.UUID) []domain.DailyRecord {
	var records []domain.DailyRecord
	for _, r := range m.records {
		if r.UserID == userID {
			records = append(records, *r)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordDate.After(records[j].RecordDate)
	})
	return records
}

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	questions []domain.Question
	err       error
}

func NewMockQuestionRepository(questions ...domain.Question) *MockQuestionRepository {
	return &MockQuestionRepository{questions: questions}
}

func (m *MockQuestionRepository) ListActive(ctx context.Context) ([]domain.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Question(nil), m.questions...), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	lastContext *domain.InsightsContext
	output      *domain.LLMInsightsOutput
	err         error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastContext = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
