package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository bundles the per-entity repositories behind a single accessor so
// services depend on one constructor argument.
type Repository interface {
	Word() WordRepository
	Flashcard() FlashcardRepository
	Quiz() QuizRepository
	Progress() ProgressRepository
	Activity() ActivityRepository
}

// IsNotFoundError reports whether err is the storage layer's missing-record error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ===== SHARED FILTER STRUCTS =====

type WordFilters struct {
	Source     *string `json:"source"`
	CategoryID *uint   `json:"category_id"`
	Search     string  `json:"search"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
	SortBy     string  `json:"sort_by"`    // "dutch", "created_at"
	SortOrder  string  `json:"sort_order"` // "asc", "desc"
}

type SessionFilters struct {
	CompletedOnly bool       `json:"completed_only"`
	DateFrom      *time.Time `json:"date_from"`
	DateTo        *time.Time `json:"date_to"`
	Limit         int        `json:"limit"`
	Offset        int        `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type SessionStats struct {
	TotalSessions  int     `json:"total_sessions"`
	AverageScore   float64 `json:"average_score"`
	BestScore      int     `json:"best_score"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
}
