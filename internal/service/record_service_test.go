package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
)

// Mocks are defined in mocks_test.go

func catalogQuestions() []domain.Question {
	return []domain.Question{
		{ID: uuid.New(), QuestionKey: "reading", DisplayOrder: 1, IsActive: true},
		{ID: uuid.New(), QuestionKey: "exercise", DisplayOrder: 2, IsActive: true},
		{ID: uuid.New(), QuestionKey: "no_phone_in_bed", DisplayOrder: 3, IsActive: true},
	}
}

func newRecordFixture(t *testing.T) (RecordService, *MockDailyRecordRepository, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Email: "me@example.com"}
	recordRepo := NewMockDailyRecordRepository()
	svc := NewRecordService(recordRepo, NewMockQuestionRepository(catalogQuestions()...), userRepo)
	return svc, recordRepo, userID
}

func TestRecordService_SaveDay_DerivesScoreFromAnswers(t *testing.T) {
	svc, recordRepo, userID := newRecordFixture(t)
	day := date(2024, 6, 1)

	record, err := svc.SaveDay(context.Background(), userID, day, &domain.SaveDayRequest{
		WakeUpTime: strPtr("07:30"),
		Bedtime:    strPtr("23:45"),
		SleepScore: intPtr(82),
		Answers: map[string]*bool{
			"reading":         boolPtr(true),
			"exercise":        boolPtr(false),
			"no_phone_in_bed": nil,
			"not_in_catalog":  boolPtr(true), // must be ignored
		},
	})
	if err != nil {
		t.Fatalf("SaveDay() error = %v", err)
	}

	if record.TotalScore != 1 {
		t.Errorf("TotalScore = %d, want 1", record.TotalScore)
	}
	// Only the answered catalog keys are persisted: reading=true, exercise=false.
	if got := len(recordRepo.answers[record.ID]); got != 2 {
		t.Errorf("stored answers = %d, want 2", got)
	}
}

func TestRecordService_SaveDay_ReplaceDropsStaleAnswers(t *testing.T) {
	svc, recordRepo, userID := newRecordFixture(t)
	day := date(2024, 6, 1)

	first, err := svc.SaveDay(context.Background(), userID, day, &domain.SaveDayRequest{
		Answers: map[string]*bool{
			"reading":  boolPtr(true),
			"exercise": boolPtr(true),
		},
	})
	if err != nil {
		t.Fatalf("first SaveDay() error = %v", err)
	}
	if first.TotalScore != 2 {
		t.Fatalf("first TotalScore = %d, want 2", first.TotalScore)
	}

	// Un-answer "exercise" and save again: the old row must not survive.
	second, err := svc.SaveDay(context.Background(), userID, day, &domain.SaveDayRequest{
		Answers: map[string]*bool{
			"reading": boolPtr(true),
		},
	})
	if err != nil {
		t.Fatalf("second SaveDay() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second save created a new record: %v != %v", second.ID, first.ID)
	}
	if second.TotalScore != 1 {
		t.Errorf("second TotalScore = %d, want 1", second.TotalScore)
	}
	if got := len(recordRepo.answers[second.ID]); got != 1 {
		t.Errorf("stored answers = %d, want 1 (stale row survived)", got)
	}
	if len(recordRepo.records) != 1 {
		t.Errorf("record rows = %d, want 1", len(recordRepo.records))
	}
}

func TestRecordService_SaveDay_OverwritesClearedFields(t *testing.T) {
	svc, recordRepo, userID := newRecordFixture(t)
	day := date(2024, 6, 1)

	if _, err := svc.SaveDay(context.Background(), userID, day, &domain.SaveDayRequest{
		WakeUpTime: strPtr("07:30"),
		Notes:      strPtr("slow morning"),
	}); err != nil {
		t.Fatalf("SaveDay() error = %v", err)
	}

	// Cleared fields overwrite with absent; empty strings never reach the store.
	record, err := svc.SaveDay(context.Background(), userID, day, &domain.SaveDayRequest{
		WakeUpTime: strPtr(""),
	})
	if err != nil {
		t.Fatalf("SaveDay() error = %v", err)
	}

	stored := recordRepo.records[record.ID]
	if stored.WakeUpTime != nil {
		t.Errorf("WakeUpTime = %q, want nil", *stored.WakeUpTime)
	}
	if stored.Notes != nil {
		t.Errorf("Notes = %q, want nil (cleared field preserved old value)", *stored.Notes)
	}
}

func TestRecordService_SaveDay_Failures(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name    string
		setup   func(*MockDailyRecordRepository)
		wantErr error
	}{
		{
			name:    "upsert failure",
			setup:   func(m *MockDailyRecordRepository) { m.upsertErr = boom },
			wantErr: domain.ErrSaveFailed,
		},
		{
			name:    "delete failure",
			setup:   func(m *MockDailyRecordRepository) { m.deleteErr = boom },
			wantErr: domain.ErrSaveFailed,
		},
		{
			name:    "insert failure after delete is the severe variant",
			setup:   func(m *MockDailyRecordRepository) { m.insertErr = boom },
			wantErr: domain.ErrPartialSave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, recordRepo, userID := newRecordFixture(t)
			tt.setup(recordRepo)

			_, err := svc.SaveDay(context.Background(), userID, date(2024, 6, 1), &domain.SaveDayRequest{
				Answers: map[string]*bool{"reading": boolPtr(true)},
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SaveDay() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordService_SaveDay_UnknownUser(t *testing.T) {
	svc, _, _ := newRecordFixture(t)

	_, err := svc.SaveDay(context.Background(), uuid.New(), date(2024, 6, 1), &domain.SaveDayRequest{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SaveDay() error = %v, want ErrNotFound", err)
	}
}

func TestRecordService_LoadDay_BlankWhenMissing(t *testing.T) {
	svc, _, userID := newRecordFixture(t)

	state, err := svc.LoadDay(context.Background(), userID, date(2024, 6, 1))
	if err != nil {
		t.Fatalf("LoadDay() error = %v", err)
	}

	if state.RecordDate != "2024-06-01" {
		t.Errorf("RecordDate = %q", state.RecordDate)
	}
	if state.WakeUpTime != nil || state.Bedtime != nil || state.SleepScore != nil || state.Notes != nil {
		t.Error("blank day has non-empty optional fields")
	}
	if len(state.Answers) != 3 {
		t.Fatalf("answer keys = %d, want 3", len(state.Answers))
	}
	for key, v := range state.Answers {
		if v != nil {
			t.Errorf("answer %q = %v, want nil", key, *v)
		}
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, want 0", state.Score)
	}
}

func TestRecordService_LoadDay_RoundTrip(t *testing.T) {
	svc, _, userID := newRecordFixture(t)
	day := date(2024, 6, 1)

	if _, err := svc.SaveDay(context.Background(), userID, day, &domain.SaveDayRequest{
		WakeUpTime: strPtr("06:50"),
		Bedtime:    strPtr("00:30"),
		SleepScore: intPtr(77),
		Notes:      strPtr("good focus"),
		Answers: map[string]*bool{
			"reading":  boolPtr(true),
			"exercise": boolPtr(false),
		},
	}); err != nil {
		t.Fatalf("SaveDay() error = %v", err)
	}

	state, err := svc.LoadDay(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("LoadDay() error = %v", err)
	}

	if state.WakeUpTime == nil || *state.WakeUpTime != "06:50" {
		t.Errorf("WakeUpTime = %v, want 06:50", state.WakeUpTime)
	}
	if state.Bedtime == nil || *state.Bedtime != "00:30" {
		t.Errorf("Bedtime = %v, want 00:30", state.Bedtime)
	}
	if state.SleepScore == nil || *state.SleepScore != 77 {
		t.Errorf("SleepScore = %v, want 77", state.SleepScore)
	}
	if v := state.Answers["reading"]; v == nil || !*v {
		t.Errorf("answers[reading] = %v, want true", v)
	}
	if v := state.Answers["exercise"]; v == nil || *v {
		t.Errorf("answers[exercise] = %v, want false", v)
	}
	if v := state.Answers["no_phone_in_bed"]; v != nil {
		t.Errorf("answers[no_phone_in_bed] = %v, want nil", *v)
	}
	if state.Score != 1 {
		t.Errorf("Score = %d, want 1", state.Score)
	}
}

func TestRecordService_List_DefaultsAndCursor(t *testing.T) {
	svc, recordRepo, userID := newRecordFixture(t)

	base := date(2024, 6, 30)
	for i := 0; i < 25; i++ {
		id := uuid.New()
		recordRepo.records[id] = &domain.DailyRecord{
			ID:         id,
			UserID:     userID,
			RecordDate: base.AddDate(0, 0, -i),
			TotalScore: i % 4,
		}
	}

	resp, err := svc.List(context.Background(), userID, domain.RecordFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(resp.Data) != 20 {
		t.Fatalf("expected default 20 results, got %d", len(resp.Data))
	}
	if !resp.Pagination.HasMore {
		t.Fatal("expected HasMore")
	}
	if resp.Data[0].RecordDate != "2024-06-30" {
		t.Errorf("first record = %s, want newest", resp.Data[0].RecordDate)
	}

	next, err := svc.List(context.Background(), userID, domain.RecordFilter{Cursor: resp.Pagination.NextCursor})
	if err != nil {
		t.Fatalf("List(cursor) error = %v", err)
	}
	if len(next.Data) != 5 {
		t.Fatalf("expected remaining 5 results, got %d", len(next.Data))
	}
	if next.Pagination.HasMore {
		t.Error("expected no more pages")
	}
}
