package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordDateLayout is the calendar-date format used in URLs and responses.
const RecordDateLayout = "2006-01-02"

// DailyRecord aggregates one day of tracked data. There is at most one row
// per (user_id, record_date); saves upsert on that key. TotalScore is a
// cached derivation of the stored answers, never edited independently.
type DailyRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_records_user_date" json:"user_id"`
	RecordDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_records_user_date" json:"record_date"`
	WakeUpTime *string   `gorm:"type:varchar(5)" json:"wake_up_time,omitempty"`
	// Bedtime is the bedtime of the previous evening, possibly past midnight.
	Bedtime    *string   `gorm:"type:varchar(5)" json:"bedtime,omitempty"`
	SleepScore *int      `gorm:"type:smallint" json:"sleep_score,omitempty"`
	Notes      *string   `gorm:"type:text" json:"notes,omitempty"`
	TotalScore int       `gorm:"not null;default:0" json:"total_score"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Answers []Answer `gorm:"foreignKey:DailyRecordID" json:"-"`
}

func (DailyRecord) TableName() string {
	return "daily_records"
}

// Answer is a child row of DailyRecord. The answer rows for a record are
// always exactly the non-nil entries of the AnswerSet used at last save;
// saves replace the whole set rather than patching it.
type Answer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DailyRecordID uuid.UUID `gorm:"type:uuid;not null;index" json:"daily_record_id"`
	QuestionID    uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	AnswerValue   bool      `gorm:"not null" json:"answer_value"`

	Question Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Answer) TableName() string {
	return "answers"
}

// SaveDayRequest is the request body for saving a day.
// @Description Full state of one tracked day. Scalar fields overwrite what is
// @Description stored; omitted or empty optionals clear the stored value.
type SaveDayRequest struct {
	// Wake-up time as HH:MM
	WakeUpTime *string `json:"wake_up_time,omitempty" validate:"omitempty,timeofday" example:"07:30"`
	// Bedtime of the previous evening as HH:MM, possibly past midnight
	Bedtime *string `json:"bedtime,omitempty" validate:"omitempty,timeofday" example:"23:45"`
	// Sleep score from a wearable or self-assessment (0-100)
	SleepScore *int `json:"sleep_score,omitempty" validate:"omitempty,min=0,max=100" example:"82"`
	// Free-text notes
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	// question_key -> answer; null means unanswered. Keys outside the active
	// catalog are ignored.
	Answers map[string]*bool `json:"answers"`
}

// DayState is what the editor needs to render one day: the stored optional
// fields plus a full AnswerSet over the active catalog. A day without a
// record is a blank state, not an error.
type DayState struct {
	RecordDate string    `json:"record_date" example:"2024-06-01"`
	WakeUpTime *string   `json:"wake_up_time,omitempty" example:"07:30"`
	Bedtime    *string   `json:"bedtime,omitempty" example:"23:45"`
	SleepScore *int      `json:"sleep_score,omitempty" example:"82"`
	Notes      *string   `json:"notes,omitempty"`
	Answers    AnswerSet `json:"answers"`
	Score      int       `json:"score" example:"5"`
}

// DailyRecordResponse is the response body for saved records.
type DailyRecordResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	RecordDate string    `json:"record_date" example:"2024-06-01"`
	WakeUpTime *string   `json:"wake_up_time,omitempty" example:"07:30"`
	Bedtime    *string   `json:"bedtime,omitempty" example:"23:45"`
	SleepScore *int      `json:"sleep_score,omitempty" example:"82"`
	Notes      *string   `json:"notes,omitempty"`
	TotalScore int       `json:"total_score" example:"5"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *DailyRecord) ToResponse() DailyRecordResponse {
	return DailyRecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		RecordDate: r.RecordDate.Format(RecordDateLayout),
		WakeUpTime: r.WakeUpTime,
		Bedtime:    r.Bedtime,
		SleepScore: r.SleepScore,
		Notes:      r.Notes,
		TotalScore: r.TotalScore,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// RecordListResponse is the response body for listing record history.
// @Description Paginated record history, newest first.
type RecordListResponse struct {
	Data       []DailyRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// RecordFilter contains filter parameters for listing records.
type RecordFilter struct {
	Limit  int
	Cursor string
}
