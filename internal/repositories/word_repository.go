package repositories

import (
	"context"

	"github.com/nederlandse-workbook/learning-service/internal/models"
)

// WordRepository interface for vocabulary entry operations
type WordRepository interface {
	// Basic CRUD operations. Creation always goes through GetOrCreate so the
	// (dutch, translation, source) dedup holds.
	GetByID(ctx context.Context, id uint) (*models.Word, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*models.Word, error)
	Update(ctx context.Context, word *models.Word) error
	Delete(ctx context.Context, id uint) error

	// GetOrCreate looks up (dutch, translation, source) and returns the
	// existing row when present. The bool reports whether a row was created.
	GetOrCreate(ctx context.Context, word *models.Word) (*models.Word, bool, error)

	// List applies source, category and search filters plus pagination.
	List(ctx context.Context, filters WordFilters) ([]*models.Word, int64, error)

	// Category management
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	AddToCategory(ctx context.Context, wordID, categoryID uint) error
	RemoveFromCategory(ctx context.Context, wordID, categoryID uint) error
}
