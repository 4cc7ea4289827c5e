package repositories

import (
	"context"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/models"
)

// FlashcardRepository interface for per-user learning state operations
type FlashcardRepository interface {
	// Basic CRUD operations
	GetByID(ctx context.Context, id uint) (*models.Flashcard, error)
	GetByUserAndWord(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error)
	Save(ctx context.Context, card *models.Flashcard) error
	Delete(ctx context.Context, id uint) error

	// GetOrCreate returns the user's card for the word, creating a fresh
	// box-1 card due immediately when none exists.
	GetOrCreate(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error)

	// Query operations
	ListByUser(ctx context.Context, userID string) ([]*models.Flashcard, error)
	WordIDsByUser(ctx context.Context, userID string) ([]uint, error)
	CountByUser(ctx context.Context, userID string) (int64, error)

	// Due-card queue, ordered by next_review ascending.
	ListDue(ctx context.Context, userID string, now time.Time) ([]*models.Flashcard, error)
}
