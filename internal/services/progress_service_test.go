package services

import (
	"context"
	"testing"

	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProgressTestDeps() (*mockRepository, ProgressService) {
	repo := newMockRepository()
	return repo, NewProgressService(repo, testLogger())
}

func TestProgressService_RecordQuizCompleted_RunningAverage(t *testing.T) {
	repo, svc := newProgressTestDeps()
	ctx := context.Background()

	userProgress := &models.UserProgress{UserID: "user-1"}
	repo.progress.On("GetOrCreate", ctx, "user-1").Return(userProgress, nil)
	repo.progress.On("Save", ctx, userProgress).Return(nil)
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(&models.DailyActivity{UserID: "user-1"}, nil)
	repo.activity.On("Save", ctx, mock.Anything).Return(nil)

	_, err := svc.RecordQuizCompleted(ctx, "user-1", 5, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, userProgress.TotalQuizzes)
	assert.InDelta(t, 5.0, userProgress.AverageScore, 1e-9)

	_, err = svc.RecordQuizCompleted(ctx, "user-1", 10, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, userProgress.TotalQuizzes)
	assert.InDelta(t, 7.5, userProgress.AverageScore, 1e-9)
}

func TestProgressService_RecordQuizCompleted_DailyCounters(t *testing.T) {
	repo, svc := newProgressTestDeps()
	ctx := context.Background()

	repo.progress.On("GetOrCreate", ctx, "user-1").Return(&models.UserProgress{UserID: "user-1"}, nil)
	repo.progress.On("Save", ctx, mock.Anything).Return(nil)

	daily := &models.DailyActivity{UserID: "user-1"}
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).Return(daily, nil)
	repo.activity.On("Save", ctx, daily).Return(nil)

	_, err := svc.RecordQuizCompleted(ctx, "user-1", 7, 7, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, daily.QuizzesCompleted)
	assert.Equal(t, 7, daily.CorrectAnswers)
	assert.Equal(t, 10, daily.TotalAnswers)
}

func TestProgressService_RecordWordAdded(t *testing.T) {
	repo, svc := newProgressTestDeps()
	ctx := context.Background()

	userProgress := &models.UserProgress{UserID: "user-1", WordsLearned: 4}
	repo.progress.On("GetOrCreate", ctx, "user-1").Return(userProgress, nil)
	repo.progress.On("Save", ctx, userProgress).Return(nil)

	daily := &models.DailyActivity{UserID: "user-1", NewWords: 2}
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).Return(daily, nil)
	repo.activity.On("Save", ctx, daily).Return(nil)

	err := svc.RecordWordAdded(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 5, userProgress.WordsLearned)
	assert.Equal(t, 3, daily.NewWords)
}

func TestProgressService_RecordReviewServed(t *testing.T) {
	repo, svc := newProgressTestDeps()
	ctx := context.Background()

	daily := &models.DailyActivity{UserID: "user-1"}
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).Return(daily, nil)
	repo.activity.On("Save", ctx, daily).Return(nil)

	err := svc.RecordReviewServed(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, daily.WordsReviewed)
	repo.progress.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestProgressService_Dashboard(t *testing.T) {
	repo, svc := newProgressTestDeps()
	ctx := context.Background()

	userProgress := &models.UserProgress{UserID: "user-1", WordsLearned: 12}
	daily := &models.DailyActivity{UserID: "user-1", NewWords: 2}
	stats := &repositories.SessionStats{TotalSessions: 3, BestScore: 9}
	week := []*models.DailyActivity{daily}

	repo.progress.On("GetOrCreate", ctx, "user-1").Return(userProgress, nil)
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).Return(daily, nil)
	repo.quiz.On("GetUserStats", ctx, "user-1").Return(stats, nil)
	repo.activity.On("ListRange", ctx, "user-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(week, nil)
	repo.flashcard.On("CountByUser", ctx, "user-1").Return(int64(12), nil)

	resp, err := svc.Dashboard(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, userProgress, resp.Progress)
	assert.Equal(t, daily, resp.Today)
	assert.Equal(t, stats, resp.QuizStats)
	assert.Equal(t, week, resp.Week)
	assert.Equal(t, int64(12), resp.Flashcards)
}
