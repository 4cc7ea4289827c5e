package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nederlandse-workbook/learning-service/internal/events"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

type wordService struct {
	repo      repositories.Repository
	progress  ProgressService
	publisher events.ActivityPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewWordService(
	repo repositories.Repository,
	progress ProgressService,
	publisher events.ActivityPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) WordService {
	return &wordService{
		repo:      repo,
		progress:  progress,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Create adds a vocabulary entry. (dutch, translation, source) is
// deduplicated: a second create returns the existing word with Created=false.
// On a fresh word the creating user also gets a box-1 flashcard and their
// counters are bumped.
func (s *wordService) Create(ctx context.Context, userID string, req *CreateWordRequest) (*WordResponse, error) {
	req.Dutch = strings.TrimSpace(req.Dutch)
	req.Translation = strings.TrimSpace(req.Translation)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	word := &models.Word{
		Dutch:        req.Dutch,
		Translation:  req.Translation,
		Source:       req.Source,
		PartOfSpeech: strings.TrimSpace(req.PartOfSpeech),
		Context:      strings.TrimSpace(req.Context),
		Example:      strings.TrimSpace(req.Example),
	}

	word, created, err := s.repo.Word().GetOrCreate(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("failed to create word: %w", err)
	}

	if !created {
		s.logger.Info("Word already exists, returning existing entry",
			"word_id", word.ID,
			"dutch", word.Dutch)
		return &WordResponse{Word: word, Created: false}, nil
	}

	if _, err := s.repo.Flashcard().GetOrCreate(ctx, userID, word.ID); err != nil {
		return nil, fmt.Errorf("failed to create flashcard: %w", err)
	}

	if err := s.progress.RecordWordAdded(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	event := newActivityEvent(events.EventWordAdded, userID, events.WordAddedEvent{
		WordID:      word.ID,
		Dutch:       word.Dutch,
		Translation: word.Translation,
		Source:      string(word.Source),
	})
	if err := s.publisher.PublishActivityEvent(ctx, event); err != nil {
		// Rollups are already committed; a lost event is not worth failing the create.
		s.logger.Warn("Failed to publish word added event", "word_id", word.ID, "error", err)
	}

	s.logger.Info("Word created",
		"word_id", word.ID,
		"dutch", word.Dutch,
		"user_id", userID)

	return &WordResponse{Word: word, Created: true}, nil
}

func (s *wordService) Get(ctx context.Context, id uint) (*models.Word, error) {
	word, err := s.repo.Word().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return word, nil
}

// Update edits the describing fields of a word. Quiz answers are unaffected:
// they carry the translation text denormalized at answer time.
func (s *wordService) Update(ctx context.Context, id uint, req *UpdateWordRequest) (*models.Word, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	word, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Translation != nil {
		word.Translation = strings.TrimSpace(*req.Translation)
	}
	if req.PartOfSpeech != nil {
		word.PartOfSpeech = strings.TrimSpace(*req.PartOfSpeech)
	}
	if req.Context != nil {
		word.Context = strings.TrimSpace(*req.Context)
	}
	if req.Example != nil {
		word.Example = strings.TrimSpace(*req.Example)
	}

	if err := s.repo.Word().Update(ctx, word); err != nil {
		return nil, fmt.Errorf("failed to update word: %w", err)
	}

	s.logger.Info("Word updated", "word_id", word.ID)
	return word, nil
}

// Delete removes a vocabulary entry. Existing quiz answers keep their
// denormalized text; a quiz in flight over this word degrades to the
// unknown-word placeholder.
func (s *wordService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Word().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}

	s.logger.Info("Word deleted", "word_id", id)
	return nil
}

func (s *wordService) List(ctx context.Context, filters repositories.WordFilters) ([]*models.Word, int64, error) {
	return s.repo.Word().List(ctx, filters)
}

func (s *wordService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Color:       req.Color,
	}
	if err := s.repo.Word().CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *wordService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.repo.Word().ListCategories(ctx)
}

func (s *wordService) Categorize(ctx context.Context, wordID, categoryID uint) error {
	if _, err := s.Get(ctx, wordID); err != nil {
		return err
	}
	if err := s.repo.Word().AddToCategory(ctx, wordID, categoryID); err != nil {
		return fmt.Errorf("failed to categorize word: %w", err)
	}
	return nil
}

func (s *wordService) Uncategorize(ctx context.Context, wordID, categoryID uint) error {
	if _, err := s.Get(ctx, wordID); err != nil {
		return err
	}
	if err := s.repo.Word().RemoveFromCategory(ctx, wordID, categoryID); err != nil {
		return fmt.Errorf("failed to uncategorize word: %w", err)
	}
	return nil
}

// AddFlashcard puts the word into the user's learning set. Adding a word that
// is already in the set is a no-op and does not bump any counters.
func (s *wordService) AddFlashcard(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error) {
	if _, err := s.Get(ctx, wordID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Flashcard().GetByUserAndWord(ctx, userID, wordID)
	if err == nil {
		return existing, nil
	}
	if !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to look up flashcard: %w", err)
	}

	card, err := s.repo.Flashcard().GetOrCreate(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard: %w", err)
	}

	if err := s.progress.RecordWordAdded(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	s.logger.Info("Flashcard added", "user_id", userID, "word_id", wordID, "card_id", card.ID)
	return card, nil
}

func (s *wordService) RemoveFlashcard(ctx context.Context, userID string, wordID uint) error {
	if _, err := s.Get(ctx, wordID); err != nil {
		return err
	}

	card, err := s.repo.Flashcard().GetByUserAndWord(ctx, userID, wordID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("failed to look up flashcard: %w", err)
	}

	if err := s.repo.Flashcard().Delete(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to delete flashcard: %w", err)
	}

	s.logger.Info("Flashcard removed", "user_id", userID, "word_id", wordID)
	return nil
}
