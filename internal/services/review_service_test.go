package services

import (
	"context"
	"testing"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/events"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewTestDeps(now time.Time) (*mockRepository, *events.MockActivityPublisher, ReviewService) {
	repo := newMockRepository()
	publisher := events.NewMockActivityPublisher(nil)
	logger := testLogger()
	svc := NewReviewService(repo, NewProgressService(repo, logger), publisher, logger).(*reviewService)
	svc.now = func() time.Time { return now }
	return repo, publisher, svc
}

func TestReviewService_RateCard_GoodAdvancesBox(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo, publisher, svc := newReviewTestDeps(now)
	ctx := context.Background()

	card := &models.Flashcard{ID: 1, UserID: "user-1", WordID: 10, Box: 2}
	repo.flashcard.On("GetByID", ctx, uint(1)).Return(card, nil)
	repo.flashcard.On("Save", ctx, card).Return(nil)

	updated, err := svc.RateCard(ctx, "user-1", 1, "good")

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Box)
	require.NotNil(t, updated.NextReview)
	assert.Equal(t, now.AddDate(0, 0, 7), *updated.NextReview)
	require.NotNil(t, updated.LastReviewed)
	assert.Equal(t, now, *updated.LastReviewed)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.EventCardReviewed, publisher.Events[0].Type)
}

func TestReviewService_RateCard_AgainResetsToBoxOne(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo, _, svc := newReviewTestDeps(now)
	ctx := context.Background()

	card := &models.Flashcard{ID: 1, UserID: "user-1", WordID: 10, Box: 5}
	repo.flashcard.On("GetByID", ctx, uint(1)).Return(card, nil)
	repo.flashcard.On("Save", ctx, card).Return(nil)

	updated, err := svc.RateCard(ctx, "user-1", 1, "again")

	require.NoError(t, err)
	assert.Equal(t, 1, updated.Box)
	require.NotNil(t, updated.NextReview)
	assert.Equal(t, now.AddDate(0, 0, 1), *updated.NextReview)
}

func TestReviewService_RateCard_UnknownRatingOnlyStampsReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo, publisher, svc := newReviewTestDeps(now)
	ctx := context.Background()

	due := now.AddDate(0, 0, 3)
	card := &models.Flashcard{ID: 1, UserID: "user-1", WordID: 10, Box: 3, NextReview: &due}
	repo.flashcard.On("GetByID", ctx, uint(1)).Return(card, nil)
	repo.flashcard.On("Save", ctx, card).Return(nil)

	updated, err := svc.RateCard(ctx, "user-1", 1, "excellent")

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Box)
	require.NotNil(t, updated.NextReview)
	assert.Equal(t, due, *updated.NextReview)
	require.NotNil(t, updated.LastReviewed)
	assert.Equal(t, now, *updated.LastReviewed)
	assert.Empty(t, publisher.Events)
}

func TestReviewService_RateCard_NotFound(t *testing.T) {
	repo, _, svc := newReviewTestDeps(time.Now())
	ctx := context.Background()

	repo.flashcard.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RateCard(ctx, "user-1", 9, "good")

	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestReviewService_RateCard_OtherUsersCardLooksMissing(t *testing.T) {
	repo, _, svc := newReviewTestDeps(time.Now())
	ctx := context.Background()

	card := &models.Flashcard{ID: 1, UserID: "someone-else", WordID: 10, Box: 2}
	repo.flashcard.On("GetByID", ctx, uint(1)).Return(card, nil)

	_, err := svc.RateCard(ctx, "user-1", 1, "good")

	assert.ErrorIs(t, err, ErrCardNotFound)
	repo.flashcard.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReviewService_DueCards_ServesFirstAndCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo, _, svc := newReviewTestDeps(now)
	ctx := context.Background()

	due := []*models.Flashcard{
		{ID: 1, UserID: "user-1", WordID: 10},
		{ID: 2, UserID: "user-1", WordID: 11},
		{ID: 3, UserID: "user-1", WordID: 12},
	}
	repo.flashcard.On("ListDue", ctx, "user-1", now).Return(due, nil)

	daily := &models.DailyActivity{UserID: "user-1"}
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).Return(daily, nil)
	repo.activity.On("Save", ctx, daily).Return(nil)

	queue, err := svc.DueCards(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, due[0], queue.Card)
	assert.Equal(t, 3, queue.Remaining)
	assert.Equal(t, 1, daily.WordsReviewed)
}

func TestReviewService_Cards(t *testing.T) {
	repo, _, svc := newReviewTestDeps(time.Now())
	ctx := context.Background()

	set := []*models.Flashcard{
		{ID: 1, UserID: "user-1", WordID: 10, Box: 2},
		{ID: 2, UserID: "user-1", WordID: 11, Box: 1},
	}
	repo.flashcard.On("ListByUser", ctx, "user-1").Return(set, nil)

	cards, err := svc.Cards(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, set, cards)
}

func TestReviewService_DueCards_EmptyQueue(t *testing.T) {
	now := time.Now()
	repo, _, svc := newReviewTestDeps(now)
	ctx := context.Background()

	repo.flashcard.On("ListDue", ctx, "user-1", now).Return([]*models.Flashcard{}, nil)

	queue, err := svc.DueCards(ctx, "user-1")

	require.NoError(t, err)
	assert.Nil(t, queue.Card)
	assert.Equal(t, 0, queue.Remaining)
	repo.activity.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}
