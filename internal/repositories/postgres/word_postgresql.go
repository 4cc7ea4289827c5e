package postgres

import (
	"context"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"gorm.io/gorm"
)

type WordPostgreSQL struct {
	db *gorm.DB
}

func NewWordPostgreSQL(db *gorm.DB) repositories.WordRepository {
	return &WordPostgreSQL{db: db}
}

func (w *WordPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Word, error) {
	var word models.Word
	if err := w.db.WithContext(ctx).First(&word, id).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

func (w *WordPostgreSQL) GetByIDs(ctx context.Context, ids []uint) ([]*models.Word, error) {
	var words []*models.Word
	if len(ids) == 0 {
		return words, nil
	}
	if err := w.db.WithContext(ctx).Where("id IN ?", ids).Find(&words).Error; err != nil {
		return nil, err
	}
	return words, nil
}

func (w *WordPostgreSQL) Update(ctx context.Context, word *models.Word) error {
	return w.db.WithContext(ctx).Save(word).Error
}

func (w *WordPostgreSQL) Delete(ctx context.Context, id uint) error {
	return w.db.WithContext(ctx).Delete(&models.Word{}, id).Error
}

func (w *WordPostgreSQL) GetOrCreate(ctx context.Context, word *models.Word) (*models.Word, bool, error) {
	var existing models.Word
	err := w.db.WithContext(ctx).
		Where("dutch = ? AND translation = ? AND source = ?", word.Dutch, word.Translation, word.Source).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !repositories.IsNotFoundError(err) {
		return nil, false, err
	}

	if err := w.db.WithContext(ctx).Create(word).Error; err != nil {
		return nil, false, err
	}
	return word, true, nil
}

func (w *WordPostgreSQL) List(ctx context.Context, filters repositories.WordFilters) ([]*models.Word, int64, error) {
	var words []*models.Word
	var total int64

	// apply filter first
	query := w.db.WithContext(ctx).Model(&models.Word{})
	query = w.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = w.applyPaginationAndSort(query, filters)

	if err := query.Find(&words).Error; err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

func (w *WordPostgreSQL) CreateCategory(ctx context.Context, category *models.Category) error {
	return w.db.WithContext(ctx).Create(category).Error
}

func (w *WordPostgreSQL) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := w.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (w *WordPostgreSQL) AddToCategory(ctx context.Context, wordID, categoryID uint) error {
	link := models.CategorizedWord{WordID: wordID, CategoryID: categoryID}
	return w.db.WithContext(ctx).
		Where("word_id = ? AND category_id = ?", wordID, categoryID).
		FirstOrCreate(&link).Error
}

func (w *WordPostgreSQL) RemoveFromCategory(ctx context.Context, wordID, categoryID uint) error {
	return w.db.WithContext(ctx).
		Where("word_id = ? AND category_id = ?", wordID, categoryID).
		Delete(&models.CategorizedWord{}).Error
}

func (w *WordPostgreSQL) applyFilters(query *gorm.DB, filters repositories.WordFilters) *gorm.DB {
	if filters.Source != nil {
		query = query.Where("source = ?", *filters.Source)
	}
	if filters.CategoryID != nil {
		query = query.
			Joins("JOIN categorized_words ON categorized_words.word_id = words.id").
			Where("categorized_words.category_id = ?", *filters.CategoryID)
	}
	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("dutch ILIKE ? OR translation ILIKE ?", like, like)
	}
	return query
}

func (w *WordPostgreSQL) applyPaginationAndSort(query *gorm.DB, filters repositories.WordFilters) *gorm.DB {
	sortBy := filters.SortBy
	switch sortBy {
	case "dutch", "created_at":
	default:
		sortBy = "dutch"
	}
	order := "asc"
	if filters.SortOrder == "desc" {
		order = "desc"
	}
	query = query.Order(sortBy + " " + order)

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}
