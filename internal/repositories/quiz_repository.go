package repositories

import (
	"context"

	"github.com/nederlandse-workbook/learning-service/internal/models"
)

// QuizRepository interface for quiz session and answer operations
type QuizRepository interface {
	// Session operations
	CreateSession(ctx context.Context, session *models.QuizSession) error
	GetSession(ctx context.Context, id uint) (*models.QuizSession, error)
	GetSessionWithAnswers(ctx context.Context, id uint) (*models.QuizSession, error)
	UpdateSession(ctx context.Context, session *models.QuizSession) error

	// History and statistics
	ListByUser(ctx context.Context, userID string, filters SessionFilters) ([]*models.QuizSession, int64, error)
	GetUserStats(ctx context.Context, userID string) (*SessionStats, error)

	// Answer operations. Answers are append-only; there is no update or delete.
	CreateAnswer(ctx context.Context, answer *models.QuizAnswer) error
	CountAnswers(ctx context.Context, sessionID uint) (total int64, correct int64, err error)
}
