package postgres

import (
	"context"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"gorm.io/gorm"
)

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

func (p *ProgressPostgreSQL) GetOrCreate(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(&progress, models.UserProgress{UserID: userID}).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (p *ProgressPostgreSQL) Save(ctx context.Context, progress *models.UserProgress) error {
	return p.db.WithContext(ctx).Save(progress).Error
}

type ActivityPostgreSQL struct {
	db *gorm.DB
}

func NewActivityPostgreSQL(db *gorm.DB) repositories.ActivityRepository {
	return &ActivityPostgreSQL{db: db}
}

func (a *ActivityPostgreSQL) GetOrCreate(ctx context.Context, userID string, date time.Time) (*models.DailyActivity, error) {
	day := date.UTC().Truncate(24 * time.Hour)

	var activity models.DailyActivity
	err := a.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		FirstOrCreate(&activity, models.DailyActivity{UserID: userID, Date: day}).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (a *ActivityPostgreSQL) Save(ctx context.Context, activity *models.DailyActivity) error {
	return a.db.WithContext(ctx).Save(activity).Error
}

func (a *ActivityPostgreSQL) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*models.DailyActivity, error) {
	var activities []*models.DailyActivity
	if err := a.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.UTC().Truncate(24*time.Hour), to.UTC().Truncate(24*time.Hour)).
		Order("date asc").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
