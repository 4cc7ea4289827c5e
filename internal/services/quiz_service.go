package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/cache"
	"github.com/nederlandse-workbook/learning-service/internal/events"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
	"gorm.io/datatypes"
)

// maxQuizQuestions bounds one quiz run; fewer flashcards means a shorter quiz.
const maxQuizQuestions = 10

// maxDistractors is how many wrong options accompany the target word.
const maxDistractors = 3

const defaultHistoryLimit = 50

type quizService struct {
	repo      repositories.Repository
	store     cache.ProgressStore
	progress  ProgressService
	publisher events.ActivityPublisher
	logger    *slog.Logger
	validator *utils.Validator
	now       func() time.Time
}

func NewQuizService(
	repo repositories.Repository,
	store cache.ProgressStore,
	progress ProgressService,
	publisher events.ActivityPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) QuizService {
	return &quizService{
		repo:      repo,
		store:     store,
		progress:  progress,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		now:       time.Now,
	}
}

// Start draws a shuffled sample of the user's flashcard words, creates the
// session record and seeds the transient progress. A quiz already in flight
// for the user is overwritten; there is never more than one per user.
func (s *quizService) Start(ctx context.Context, userID string, quizType models.QuizType) (*models.QuizSession, error) {
	switch quizType {
	case models.QuizMultipleChoice, models.QuizFillBlank, models.QuizSpeedRound:
	default:
		return nil, ErrUnsupportedQuizType
	}

	wordIDs, err := s.repo.Flashcard().WordIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcard words: %w", err)
	}
	if len(wordIDs) == 0 {
		return nil, ErrNoFlashcards
	}

	rand.Shuffle(len(wordIDs), func(i, j int) {
		wordIDs[i], wordIDs[j] = wordIDs[j], wordIDs[i]
	})
	if len(wordIDs) > maxQuizQuestions {
		wordIDs = wordIDs[:maxQuizQuestions]
	}

	session := &models.QuizSession{
		UserID:    userID,
		QuizType:  quizType,
		Total:     len(wordIDs),
		WordIDs:   datatypes.NewJSONSlice(wordIDs),
		StartedAt: s.now(),
	}
	if err := s.repo.Quiz().CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create quiz session: %w", err)
	}

	progress := &cache.QuizProgress{
		SessionID: session.ID,
		WordIDs:   wordIDs,
		Position:  0,
		Score:     0,
	}
	if err := s.store.Save(ctx, userID, progress); err != nil {
		return nil, fmt.Errorf("failed to save quiz progress: %w", err)
	}

	event := newActivityEvent(events.EventQuizStarted, userID, events.QuizStartedEvent{
		SessionID: session.ID,
		QuizType:  string(quizType),
		Total:     session.Total,
	})
	if err := s.publisher.PublishActivityEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish quiz started event", "session_id", session.ID, "error", err)
	}

	s.logger.Info("Quiz started",
		"session_id", session.ID,
		"user_id", userID,
		"quiz_type", quizType,
		"total", session.Total)

	return session, nil
}

// CurrentQuestion resolves the question at the current position, or signals
// completion once the position has moved past the last word.
func (s *quizService) CurrentQuestion(ctx context.Context, userID string) (*QuestionResponse, error) {
	progress, err := s.loadProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if progress.Finished() {
		return &QuestionResponse{Completed: true}, nil
	}

	wordID := progress.WordIDs[progress.Position]
	word, err := s.repo.Word().GetByID(ctx, wordID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrWordNotFound
		}
		return nil, fmt.Errorf("failed to get question word: %w", err)
	}

	options, err := s.buildOptions(ctx, word, progress.WordIDs)
	if err != nil {
		return nil, err
	}

	return &QuestionResponse{
		Question: &Question{
			Word:    word,
			Options: options,
			Number:  progress.Position + 1,
			Total:   len(progress.WordIDs),
			Score:   progress.Score,
		},
	}, nil
}

// buildOptions samples distractors from the quiz's own word pool. Drawing
// from the pool rather than the whole table keeps options resolvable even
// when unrelated words are deleted mid-quiz. With a small pool the question
// simply has fewer options.
func (s *quizService) buildOptions(ctx context.Context, target *models.Word, pool []uint) ([]*models.Word, error) {
	others := make([]uint, 0, len(pool))
	for _, id := range pool {
		if id != target.ID {
			others = append(others, id)
		}
	}

	if len(others) > maxDistractors {
		rand.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})
		others = others[:maxDistractors]
	}

	distractors, err := s.repo.Word().GetByIDs(ctx, others)
	if err != nil {
		return nil, fmt.Errorf("failed to load distractors: %w", err)
	}

	options := append(distractors, target)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

// SubmitAnswer records one answer and advances the quiz by exactly one
// position, correct or not. The displayed answer text is denormalized onto
// the answer row; a concurrently deleted answer word degrades to a
// placeholder instead of failing the submission.
func (s *quizService) SubmitAnswer(ctx context.Context, userID string, req *SubmitAnswerRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	progress, err := s.loadProgress(ctx, userID)
	if err != nil {
		return err
	}

	word, err := s.repo.Word().GetByID(ctx, req.WordID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrWordNotFound
		}
		return fmt.Errorf("failed to get target word: %w", err)
	}

	answerText := ""
	answerWord, err := s.repo.Word().GetByID(ctx, req.AnswerID)
	switch {
	case err == nil:
		answerText = answerWord.Translation
	case repositories.IsNotFoundError(err):
		answerText = fmt.Sprintf("Unknown word (ID: %d)", req.AnswerID)
	default:
		return fmt.Errorf("failed to get answer word: %w", err)
	}

	isCorrect := req.AnswerID == req.WordID

	answer := &models.QuizAnswer{
		SessionID:  progress.SessionID,
		WordID:     word.ID,
		UserAnswer: answerText,
		IsCorrect:  isCorrect,
		AnsweredAt: s.now(),
	}
	if err := s.repo.Quiz().CreateAnswer(ctx, answer); err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}

	if isCorrect {
		progress.Score++
	}
	progress.Position++

	if err := s.store.Save(ctx, userID, progress); err != nil {
		return fmt.Errorf("failed to save quiz progress: %w", err)
	}

	return nil
}

// Finish writes the final score and completion time onto the session, folds
// the run into the progress rollups and clears the transient state. The
// session score is the running counter, not a re-aggregation of answer rows.
func (s *quizService) Finish(ctx context.Context, userID string) (*QuizSummary, error) {
	progress, err := s.loadProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Quiz().GetSession(ctx, progress.SessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get quiz session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrSessionAccessDenied
	}
	if session.CompletedAt != nil {
		return nil, ErrSessionCompleted
	}

	completedAt := s.now()
	session.Score = progress.Score
	session.CompletedAt = &completedAt
	if err := s.repo.Quiz().UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to finalize quiz session: %w", err)
	}

	totalAnswers, correctAnswers, err := s.repo.Quiz().CountAnswers(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	if _, err := s.progress.RecordQuizCompleted(ctx, userID, progress.Score, int(correctAnswers), int(totalAnswers)); err != nil {
		return nil, err
	}

	percentage := 0
	if session.Total > 0 {
		percentage = progress.Score * 100 / session.Total
	}

	if err := s.store.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear quiz progress: %w", err)
	}

	event := newActivityEvent(events.EventQuizCompleted, userID, events.QuizCompletedEvent{
		SessionID:  session.ID,
		QuizType:   string(session.QuizType),
		Score:      session.Score,
		Total:      session.Total,
		Percentage: percentage,
		FinishedAt: completedAt,
	})
	if err := s.publisher.PublishActivityEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish quiz completed event", "session_id", session.ID, "error", err)
	}

	s.logger.Info("Quiz finished",
		"session_id", session.ID,
		"user_id", userID,
		"score", session.Score,
		"total", session.Total,
		"percentage", percentage)

	return &QuizSummary{
		Session:    session,
		Score:      session.Score,
		Total:      session.Total,
		Percentage: percentage,
	}, nil
}

func (s *quizService) History(ctx context.Context, userID string, limit int) ([]*models.QuizSession, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	sessions, _, err := s.repo.Quiz().ListByUser(ctx, userID, repositories.SessionFilters{
		CompletedOnly: true,
		Limit:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz history: %w", err)
	}
	return sessions, nil
}

// SessionDetail returns one of the user's sessions with its answer rows,
// for the post-quiz results view.
func (s *quizService) SessionDetail(ctx context.Context, userID string, sessionID uint) (*models.QuizSession, error) {
	session, err := s.repo.Quiz().GetSessionWithAnswers(ctx, sessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get quiz session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrSessionAccessDenied
	}
	return session, nil
}

func (s *quizService) loadProgress(ctx context.Context, userID string) (*cache.QuizProgress, error) {
	progress, err := s.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, cache.ErrNoProgress) {
			return nil, ErrNoActiveQuiz
		}
		return nil, fmt.Errorf("failed to load quiz progress: %w", err)
	}
	return progress, nil
}
