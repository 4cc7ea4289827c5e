package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/events"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/nederlandse-workbook/learning-service/internal/scheduler"
)

type reviewService struct {
	repo      repositories.Repository
	progress  ProgressService
	publisher events.ActivityPublisher
	logger    *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewReviewService(
	repo repositories.Repository,
	progress ProgressService,
	publisher events.ActivityPublisher,
	logger *slog.Logger,
) ReviewService {
	return &reviewService{
		repo:      repo,
		progress:  progress,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Cards returns the user's whole learning set, words preloaded.
func (s *reviewService) Cards(ctx context.Context, userID string) ([]*models.Flashcard, error) {
	cards, err := s.repo.Flashcard().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}
	return cards, nil
}

// DueCards returns the first due flashcard and how many are waiting. Serving
// the queue counts as review activity for the day, matching the production
// behavior of bumping words_reviewed when the card is shown, not when rated.
func (s *reviewService) DueCards(ctx context.Context, userID string) (*ReviewQueue, error) {
	due, err := s.repo.Flashcard().ListDue(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list due cards: %w", err)
	}

	if len(due) == 0 {
		return &ReviewQueue{Remaining: 0}, nil
	}

	if err := s.progress.RecordReviewServed(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to update daily activity: %w", err)
	}

	return &ReviewQueue{Card: due[0], Remaining: len(due)}, nil
}

// RateCard applies a review rating through the box scheduler and persists the
// card. An unrecognized rating keeps box and due date but still stamps
// last_reviewed; that is long-standing production behavior and callers depend
// on the review always being acknowledged.
func (s *reviewService) RateCard(ctx context.Context, userID string, cardID uint, rating string) (*models.Flashcard, error) {
	card, err := s.repo.Flashcard().GetByID(ctx, cardID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get flashcard: %w", err)
	}

	// A card belonging to someone else looks exactly like a missing card.
	if card.UserID != userID {
		return nil, ErrCardNotFound
	}

	parsed, err := scheduler.ParseRating(rating)
	if err != nil {
		s.logger.Warn("Unrecognized rating, only stamping review time",
			"card_id", cardID,
			"rating", rating)
		parsed = scheduler.Rating(rating)
	}

	res := scheduler.Schedule(card.Box, parsed, s.now())
	card.Box = res.Box
	if !res.NextReview.IsZero() {
		next := res.NextReview
		card.NextReview = &next
	}
	last := res.LastReviewed
	card.LastReviewed = &last

	if err := s.repo.Flashcard().Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save flashcard: %w", err)
	}

	if parsed.IsValid() {
		event := newActivityEvent(events.EventCardReviewed, userID, events.CardReviewedEvent{
			FlashcardID: card.ID,
			WordID:      card.WordID,
			Rating:      parsed.String(),
			Box:         card.Box,
			NextReview:  res.NextReview,
		})
		if err := s.publisher.PublishActivityEvent(ctx, event); err != nil {
			s.logger.Warn("Failed to publish card reviewed event", "card_id", card.ID, "error", err)
		}
	}

	s.logger.Info("Flashcard rated",
		"card_id", card.ID,
		"user_id", userID,
		"rating", rating,
		"box", card.Box)

	return card, nil
}
