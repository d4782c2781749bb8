package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seededDays    = 40
	demoUserEmail = "demo@example.com"
	demoPassword  = "demo-password"
)

// defaultQuestions is the initial yes/no catalog. Existing rows are matched
// by question_key, so reseeding never duplicates the catalog.
var defaultQuestions = []domain.Question{
	{QuestionKey: "reading", QuestionText: "Did you read a book?", IconName: "Book", DisplayOrder: 1, IsActive: true},
	{QuestionKey: "studying", QuestionText: "Did you study?", IconName: "Brain", DisplayOrder: 2, IsActive: true},
	{QuestionKey: "no_phone_in_bed", QuestionText: "Did you stay off your phone in bed?", IconName: "Smartphone", DisplayOrder: 3, IsActive: true},
	{QuestionKey: "proper_meals", QuestionText: "Did you eat proper meals?", IconName: "UtensilsCrossed", DisplayOrder: 4, IsActive: true},
	{QuestionKey: "bath", QuestionText: "Did you take a bath?", IconName: "Bath", DisplayOrder: 5, IsActive: true},
	{QuestionKey: "morning_sunlight", QuestionText: "Did you get morning sunlight?", IconName: "CloudSun", DisplayOrder: 6, IsActive: true},
	{QuestionKey: "conversation", QuestionText: "Did you have a real conversation?", IconName: "MessageCircle", DisplayOrder: 7, IsActive: true},
	{QuestionKey: "journaling", QuestionText: "Did you write in your journal?", IconName: "PenTool", DisplayOrder: 8, IsActive: true},
	{QuestionKey: "no_late_gaming", QuestionText: "Did you avoid late-night gaming?", IconName: "Gamepad2", DisplayOrder: 9, IsActive: true},
}

// Run seeds the database with the question catalog, a demo user and sample
// daily records. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Question{}, &domain.DailyRecord{}, &domain.Answer{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	questions, err := SeedQuestions(db)
	if err != nil {
		return err
	}

	user, err := seedDemoUser(db)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedRecordsForUser(db, user, questions, rng); err != nil {
		return err
	}

	log.Printf("Seed completed; demo user %s (%s)", user.ID, user.Email)
	return nil
}

// SeedQuestions inserts the default catalog, keeping rows that already exist.
func SeedQuestions(db *gorm.DB) ([]domain.Question, error) {
	questions := make([]domain.Question, 0, len(defaultQuestions))
	for _, q := range defaultQuestions {
		question := q
		if err := db.Where("question_key = ?", q.QuestionKey).FirstOrCreate(&question).Error; err != nil {
			return nil, fmt.Errorf("failed to create question %s: %w", q.QuestionKey, err)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func seedDemoUser(db *gorm.DB) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := domain.User{
		ID:           uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Email:        demoUserEmail,
		PasswordHash: string(hash),
		Timezone:     "Asia/Tokyo",
	}
	if err := db.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}
	return &user, nil
}

func seedRecordsForUser(db *gorm.DB, user *domain.User, questions []domain.Question, rng *rand.Rand) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for i := 0; i < seededDays; i++ {
		date := today.AddDate(0, 0, -i)

		var answers []domain.Answer
		totalScore := 0
		for _, q := range questions {
			// Leave roughly a fifth of the questions unanswered.
			if rng.Float32() < 0.2 {
				continue
			}
			value := rng.Float32() < 0.6
			if value {
				totalScore++
			}
			answers = append(answers, domain.Answer{
				QuestionID:  q.ID,
				AnswerValue: value,
			})
		}

		wakeUp := fmt.Sprintf("%02d:%02d", 6+rng.Intn(3), rng.Intn(60))
		bedtime := fmt.Sprintf("%02d:%02d", (22+rng.Intn(4))%24, rng.Intn(60))
		sleepScore := 50 + rng.Intn(50)

		record := domain.DailyRecord{
			UserID:     user.ID,
			RecordDate: date,
			WakeUpTime: &wakeUp,
			Bedtime:    &bedtime,
			SleepScore: &sleepScore,
			TotalScore: totalScore,
		}

		result := db.Where("user_id = ? AND record_date = ?", user.ID, date).FirstOrCreate(&record)
		if result.Error != nil {
			return fmt.Errorf("failed to create record for %s: %w", date.Format(domain.RecordDateLayout), result.Error)
		}
		if result.RowsAffected == 0 {
			// Record already existed; leave its answers alone.
			continue
		}

		for j := range answers {
			answers[j].DailyRecordID = record.ID
		}
		if len(answers) > 0 {
			if err := db.Create(&answers).Error; err != nil {
				return fmt.Errorf("failed to create answers for %s: %w", date.Format(domain.RecordDateLayout), err)
			}
		}
	}
	return nil
}
