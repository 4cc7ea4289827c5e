package models

import "time"

// UserProgress is the per-user lifetime rollup maintained by the progress
// service when words are added and quizzes finish.
type UserProgress struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        string     `json:"user_id" gorm:"uniqueIndex;not null;size:255"`
	WordsLearned  int        `json:"words_learned" gorm:"default:0"`
	CurrentStreak int        `json:"current_streak" gorm:"default:0"`
	LongestStreak int        `json:"longest_streak" gorm:"default:0"`
	LastActivity  *time.Time `json:"last_activity"`
	TotalQuizzes  int        `json:"total_quizzes" gorm:"default:0"`
	AverageScore  float64    `json:"average_score" gorm:"default:0"`
	TotalReviews  int        `json:"total_reviews" gorm:"default:0"`

	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// DailyActivity is the per-(user, calendar day) counter row. Date is stored
// truncated to midnight UTC.
type DailyActivity struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_daily_user_date"`
	Date             time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_daily_user_date"`
	WordsReviewed    int       `json:"words_reviewed" gorm:"default:0"`
	QuizzesCompleted int       `json:"quizzes_completed" gorm:"default:0"`
	NewWords         int       `json:"new_words" gorm:"default:0"`
	CorrectAnswers   int       `json:"correct_answers" gorm:"default:0"`
	TotalAnswers     int       `json:"total_answers" gorm:"default:0"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (DailyActivity) TableName() string {
	return "daily_activities"
}
