package repositories

import (
	"context"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/models"
)

// ProgressRepository interface for the per-user lifetime rollup
type ProgressRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*models.UserProgress, error)
	Save(ctx context.Context, progress *models.UserProgress) error
}

// ActivityRepository interface for the per-(user, day) counter rows
type ActivityRepository interface {
	// GetOrCreate resolves the row for the user's calendar day; date is
	// truncated to midnight UTC before lookup.
	GetOrCreate(ctx context.Context, userID string, date time.Time) (*models.DailyActivity, error)
	Save(ctx context.Context, activity *models.DailyActivity) error

	// Range query for dashboards.
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*models.DailyActivity, error)
}
