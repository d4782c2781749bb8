package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyRecordRepository interface {
	// Upsert inserts or overwrites the record keyed on (user_id, record_date).
	// The record's ID is populated either way.
	Upsert(ctx context.Context, record *domain.DailyRecord) error
	// GetByUserAndDate loads a record with its answers and their questions.
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error)
	// List returns a cursor-paginated page of history, newest first.
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.DailyRecord, error)
	// ListAll returns the full history, newest first.
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, error)
	// ListSince returns records on or after the given date, oldest first.
	ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DailyRecord, error)
	// DeleteAnswers removes every child answer of a record.
	DeleteAnswers(ctx context.Context, recordID uuid.UUID) error
	// InsertAnswers inserts a batch of answer rows.
	InsertAnswers(ctx context.Context, answers []domain.Answer) error
}

type dailyRecordRepository struct {
	db *gorm.DB
}

func NewDailyRecordRepository(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

func (r *dailyRecordRepository) Upsert(ctx context.Context, record *domain.DailyRecord) error {
	// Scalar fields always overwrite; a cleared optional becomes NULL rather
	// than keeping the previously stored value.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "record_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"wake_up_time", "bedtime", "sleep_score", "notes", "total_score", "updated_at",
			}),
		}).
		Create(record).Error
}

func (r *dailyRecordRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyRecord, error) {
	var record domain.DailyRecord
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Preload("Answers.Question").
		Where("user_id = ? AND record_date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *dailyRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.RecordFilter) ([]domain.DailyRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("record_date DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: continue below the cursor row
			query = query.Where(
				"(record_date < ?) OR (record_date = ? AND id < ?)",
				cursor.RecordDate, cursor.RecordDate, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DailyRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *dailyRecordRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DailyRecord, error) {
	var records []domain.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("record_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *dailyRecordRepository) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]domain.DailyRecord, error) {
	var records []domain.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND record_date >= ?", userID, from).
		Order("record_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *dailyRecordRepository) DeleteAnswers(ctx context.Context, recordID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("daily_record_id = ?", recordID).
		Delete(&domain.Answer{}).Error
}

func (r *dailyRecordRepository) InsertAnswers(ctx context.Context, answers []domain.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&answers).Error
}
