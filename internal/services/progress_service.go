package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
)

type progressService struct {
	repo   repositories.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewProgressService(repo repositories.Repository, logger *slog.Logger) ProgressService {
	return &progressService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *progressService) Dashboard(ctx context.Context, userID string) (*DashboardResponse, error) {
	progress, err := s.repo.Progress().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	today, err := s.repo.Activity().GetOrCreate(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activity: %w", err)
	}

	stats, err := s.repo.Quiz().GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz stats: %w", err)
	}

	to := s.now()
	week, err := s.repo.Activity().ListRange(ctx, userID, to.AddDate(0, 0, -6), to)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly activity: %w", err)
	}

	cards, err := s.repo.Flashcard().CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count flashcards: %w", err)
	}

	return &DashboardResponse{
		Progress:   progress,
		Today:      today,
		QuizStats:  stats,
		Week:       week,
		Flashcards: cards,
	}, nil
}

func (s *progressService) RecordWordAdded(ctx context.Context, userID string) error {
	progress, err := s.repo.Progress().GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}
	progress.WordsLearned++
	if err := s.repo.Progress().Save(ctx, progress); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	daily, err := s.repo.Activity().GetOrCreate(ctx, userID, s.now())
	if err != nil {
		return fmt.Errorf("failed to get daily activity: %w", err)
	}
	daily.NewWords++
	if err := s.repo.Activity().Save(ctx, daily); err != nil {
		return fmt.Errorf("failed to save daily activity: %w", err)
	}

	return nil
}

func (s *progressService) RecordReviewServed(ctx context.Context, userID string) error {
	daily, err := s.repo.Activity().GetOrCreate(ctx, userID, s.now())
	if err != nil {
		return fmt.Errorf("failed to get daily activity: %w", err)
	}
	daily.WordsReviewed++
	if err := s.repo.Activity().Save(ctx, daily); err != nil {
		return fmt.Errorf("failed to save daily activity: %w", err)
	}
	return nil
}

// RecordQuizCompleted folds one finished quiz into the lifetime rollup and
// today's counters. The average is a running mean over the post-increment
// quiz count, so completing quizzes scoring 5 then 10 yields 7.5.
func (s *progressService) RecordQuizCompleted(ctx context.Context, userID string, score, correctAnswers, totalAnswers int) (*models.UserProgress, error) {
	progress, err := s.repo.Progress().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	progress.TotalQuizzes++
	totalScore := progress.AverageScore*float64(progress.TotalQuizzes-1) + float64(score)
	progress.AverageScore = totalScore / float64(progress.TotalQuizzes)

	if err := s.repo.Progress().Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	daily, err := s.repo.Activity().GetOrCreate(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activity: %w", err)
	}
	daily.QuizzesCompleted++
	daily.CorrectAnswers += correctAnswers
	daily.TotalAnswers += totalAnswers
	if err := s.repo.Activity().Save(ctx, daily); err != nil {
		return nil, fmt.Errorf("failed to save daily activity: %w", err)
	}

	s.logger.Info("Quiz rolled into progress",
		"user_id", userID,
		"total_quizzes", progress.TotalQuizzes,
		"average_score", progress.AverageScore)

	return progress, nil
}
