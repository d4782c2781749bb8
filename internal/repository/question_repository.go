package repository

import (
	"context"

	"github.com/ymurata/motivation-tracker/internal/domain"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// ListActive returns the active catalog ordered by display_order.
	ListActive(ctx context.Context) ([]domain.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListActive(ctx context.Context) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
