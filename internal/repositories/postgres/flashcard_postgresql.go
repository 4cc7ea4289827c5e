package postgres

import (
	"context"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"gorm.io/gorm"
)

type FlashcardPostgreSQL struct {
	db *gorm.DB
}

func NewFlashcardPostgreSQL(db *gorm.DB) repositories.FlashcardRepository {
	return &FlashcardPostgreSQL{db: db}
}

func (f *FlashcardPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := f.db.WithContext(ctx).Preload("Word").First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (f *FlashcardPostgreSQL) GetByUserAndWord(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := f.db.WithContext(ctx).
		Where("user_id = ? AND word_id = ?", userID, wordID).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (f *FlashcardPostgreSQL) Save(ctx context.Context, card *models.Flashcard) error {
	return f.db.WithContext(ctx).Save(card).Error
}

func (f *FlashcardPostgreSQL) Delete(ctx context.Context, id uint) error {
	return f.db.WithContext(ctx).Delete(&models.Flashcard{}, id).Error
}

func (f *FlashcardPostgreSQL) GetOrCreate(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error) {
	card, err := f.GetByUserAndWord(ctx, userID, wordID)
	if err == nil {
		return card, nil
	}
	if !repositories.IsNotFoundError(err) {
		return nil, err
	}

	now := time.Now()
	fresh := &models.Flashcard{
		UserID:     userID,
		WordID:     wordID,
		Box:        1,
		NextReview: &now,
		EaseFactor: 2.5,
	}
	if err := f.db.WithContext(ctx).Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

func (f *FlashcardPostgreSQL) ListByUser(ctx context.Context, userID string) ([]*models.Flashcard, error) {
	var cards []*models.Flashcard
	if err := f.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Word").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (f *FlashcardPostgreSQL) WordIDsByUser(ctx context.Context, userID string) ([]uint, error) {
	var ids []uint
	if err := f.db.WithContext(ctx).
		Model(&models.Flashcard{}).
		Where("user_id = ?", userID).
		Pluck("word_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (f *FlashcardPostgreSQL) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := f.db.WithContext(ctx).
		Model(&models.Flashcard{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (f *FlashcardPostgreSQL) ListDue(ctx context.Context, userID string, now time.Time) ([]*models.Flashcard, error) {
	var cards []*models.Flashcard
	if err := f.db.WithContext(ctx).
		Where("user_id = ? AND next_review <= ?", userID, now).
		Order("next_review asc").
		Preload("Word").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
