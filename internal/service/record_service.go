package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/repository"
	"github.com/ymurata/motivation-tracker/pkg/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RecordService merges a day's edited fields and answers into the persisted
// history, and reads them back for the editor.
type RecordService interface {
	// SaveDay upserts the record for (userID, date) and replaces its answers.
	SaveDay(ctx context.Context, userID uuid.UUID, date time.Time, req *domain.SaveDayRequest) (*domain.DailyRecord, error)
	// LoadDay returns the editor state for a date. A missing record yields a
	// blank state over the active catalog, not an error.
	LoadDay(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayState, error)
	// List returns cursor-paginated history, newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.RecordListResponse, error)
}

type recordService struct {
	recordRepo   repository.DailyRecordRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

func NewRecordService(recordRepo repository.DailyRecordRepository, questionRepo repository.QuestionRepository, userRepo repository.UserRepository) RecordService {
	return &recordService{
		recordRepo:   recordRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

// SaveDay follows a fixed sequence: derive the score from the answer set,
// upsert the record keyed on (user_id, record_date), delete every stored
// answer for the record, then insert the non-nil entries of the same set.
// The steps run as separate statements; a failure between delete and insert
// leaves a record whose total_score matches no stored answers, which is
// reported as ErrPartialSave so callers can re-fetch before trusting state.
func (s *recordService) SaveDay(ctx context.Context, userID uuid.UUID, date time.Time, req *domain.SaveDayRequest) (*domain.DailyRecord, error) {
	tracer := otel.Tracer("motivation-tracker-api/records")
	ctx, span := tracer.Start(ctx, "RecordService.SaveDay",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("record.date", date.Format(domain.RecordDateLayout)),
		),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	questions, err := s.questionRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	// Restrict the answers to the active catalog so the derived score and
	// the persisted rows come from the same set.
	answers := domain.NewAnswerSet(questions)
	for _, q := range questions {
		if v, ok := req.Answers[q.QuestionKey]; ok {
			answers[q.QuestionKey] = v
		}
	}
	totalScore := answers.Score()
	span.SetAttributes(
		attribute.Int("record.total_score", totalScore),
		attribute.Int("record.answered", answers.Answered()),
	)

	record := &domain.DailyRecord{
		UserID:     userID,
		RecordDate: date,
		WakeUpTime: normalizeOptional(req.WakeUpTime),
		Bedtime:    normalizeOptional(req.Bedtime),
		SleepScore: req.SleepScore,
		Notes:      normalizeOptional(req.Notes),
		TotalScore: totalScore,
	}

	if err := s.recordRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	// Full replace, not a diff: a question un-answered since the last save
	// must not leave a stale row behind.
	if err := s.recordRepo.DeleteAnswers(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSaveFailed, err)
	}

	rows := make([]domain.Answer, 0, len(questions))
	for _, q := range questions {
		if v := answers[q.QuestionKey]; v != nil {
			rows = append(rows, domain.Answer{
				DailyRecordID: record.ID,
				QuestionID:    q.ID,
				AnswerValue:   *v,
			})
		}
	}
	if err := s.recordRepo.InsertAnswers(ctx, rows); err != nil {
		// The delete already succeeded: the record now has no answers while
		// total_score still reflects the intended set.
		return nil, fmt.Errorf("%w: %v", domain.ErrPartialSave, err)
	}

	return record, nil
}

func (s *recordService) LoadDay(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayState, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	questions, err := s.questionRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	state := &domain.DayState{
		RecordDate: date.Format(domain.RecordDateLayout),
		Answers:    domain.NewAnswerSet(questions),
	}

	record, err := s.recordRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		if err == domain.ErrNotFound {
			// No record yet: the blank state above is the day's initial state.
			return state, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	keyByQuestionID := make(map[uuid.UUID]string, len(questions))
	for _, q := range questions {
		keyByQuestionID[q.ID] = q.QuestionKey
	}
	for _, a := range record.Answers {
		if key, ok := keyByQuestionID[a.QuestionID]; ok {
			v := a.AnswerValue
			state.Answers[key] = &v
		}
	}

	state.WakeUpTime = record.WakeUpTime
	state.Bedtime = record.Bedtime
	state.SleepScore = record.SleepScore
	state.Notes = record.Notes
	state.Score = state.Answers.Score()
	return state, nil
}

func (s *recordService) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) (*domain.RecordListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.recordRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.RecordListResponse{
		Data: make([]domain.DailyRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:         last.ID,
			RecordDate: last.RecordDate,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// normalizeOptional maps empty or blank strings to absent so the store never
// holds an empty string in an optional column.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
