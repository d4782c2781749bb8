package domain

import "github.com/google/uuid"

// Question is one entry of the daily yes/no catalog. The catalog is owned by
// seeding/administration; the rest of the system treats it as read-only.
type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	QuestionKey  string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"question_key"`
	QuestionText string    `gorm:"type:varchar(255);not null" json:"question_text"`
	IconName     string    `gorm:"type:varchar(64);not null" json:"icon_name"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionResponse is the response body for catalog endpoints.
type QuestionResponse struct {
	ID           uuid.UUID `json:"id"`
	QuestionKey  string    `json:"question_key"`
	QuestionText string    `json:"question_text"`
	IconName     string    `json:"icon_name"`
	DisplayOrder int       `json:"display_order"`
}

func (q *Question) ToResponse() QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		QuestionKey:  q.QuestionKey,
		QuestionText: q.QuestionText,
		IconName:     q.IconName,
		DisplayOrder: q.DisplayOrder,
	}
}
