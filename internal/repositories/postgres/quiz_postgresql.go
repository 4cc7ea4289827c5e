package postgres

import (
	"context"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"gorm.io/gorm"
)

type QuizPostgreSQL struct {
	db *gorm.DB
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{db: db}
}

func (q *QuizPostgreSQL) CreateSession(ctx context.Context, session *models.QuizSession) error {
	return q.db.WithContext(ctx).Create(session).Error
}

func (q *QuizPostgreSQL) GetSession(ctx context.Context, id uint) (*models.QuizSession, error) {
	var session models.QuizSession
	if err := q.db.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (q *QuizPostgreSQL) GetSessionWithAnswers(ctx context.Context, id uint) (*models.QuizSession, error) {
	var session models.QuizSession
	if err := q.db.WithContext(ctx).
		Preload("Answers").
		Preload("Answers.Word").
		First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (q *QuizPostgreSQL) UpdateSession(ctx context.Context, session *models.QuizSession) error {
	return q.db.WithContext(ctx).Save(session).Error
}

func (q *QuizPostgreSQL) ListByUser(ctx context.Context, userID string, filters repositories.SessionFilters) ([]*models.QuizSession, int64, error) {
	var sessions []*models.QuizSession
	var total int64

	query := q.db.WithContext(ctx).Model(&models.QuizSession{}).Where("user_id = ?", userID)
	query = q.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("started_at desc")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&sessions).Error; err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

func (q *QuizPostgreSQL) GetUserStats(ctx context.Context, userID string) (*repositories.SessionStats, error) {
	var stats repositories.SessionStats

	row := q.db.WithContext(ctx).
		Model(&models.QuizSession{}).
		Select("COUNT(*) AS total_sessions, COALESCE(AVG(score), 0) AS average_score, COALESCE(MAX(score), 0) AS best_score, COALESCE(SUM(total), 0) AS total_questions").
		Where("user_id = ? AND completed_at IS NOT NULL", userID)
	if err := row.Scan(&stats).Error; err != nil {
		return nil, err
	}

	correct := q.db.WithContext(ctx).
		Model(&models.QuizAnswer{}).
		Joins("JOIN quiz_sessions ON quiz_sessions.id = quiz_answers.session_id").
		Where("quiz_sessions.user_id = ? AND quiz_answers.is_correct", userID)
	var correctCount int64
	if err := correct.Count(&correctCount).Error; err != nil {
		return nil, err
	}
	stats.CorrectAnswers = int(correctCount)

	return &stats, nil
}

func (q *QuizPostgreSQL) CreateAnswer(ctx context.Context, answer *models.QuizAnswer) error {
	return q.db.WithContext(ctx).Create(answer).Error
}

func (q *QuizPostgreSQL) CountAnswers(ctx context.Context, sessionID uint) (int64, int64, error) {
	var total, correct int64

	if err := q.db.WithContext(ctx).
		Model(&models.QuizAnswer{}).
		Where("session_id = ?", sessionID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := q.db.WithContext(ctx).
		Model(&models.QuizAnswer{}).
		Where("session_id = ? AND is_correct", sessionID).
		Count(&correct).Error; err != nil {
		return 0, 0, err
	}

	return total, correct, nil
}

func (q *QuizPostgreSQL) applyFilters(query *gorm.DB, filters repositories.SessionFilters) *gorm.DB {
	if filters.CompletedOnly {
		query = query.Where("completed_at IS NOT NULL")
	}
	if filters.DateFrom != nil {
		query = query.Where("started_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("started_at <= ?", *filters.DateTo)
	}
	return query
}
