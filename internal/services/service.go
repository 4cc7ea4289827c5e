package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/nederlandse-workbook/learning-service/internal/cache"
	"github.com/nederlandse-workbook/learning-service/internal/events"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

// ===== SERVICE INTERFACES =====

// WordService manages vocabulary entries and the user's learning set.
type WordService interface {
	Create(ctx context.Context, userID string, req *CreateWordRequest) (*WordResponse, error)
	Get(ctx context.Context, id uint) (*models.Word, error)
	Update(ctx context.Context, id uint, req *UpdateWordRequest) (*models.Word, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters repositories.WordFilters) ([]*models.Word, int64, error)

	AddFlashcard(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error)
	RemoveFlashcard(ctx context.Context, userID string, wordID uint) error

	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	Categorize(ctx context.Context, wordID, categoryID uint) error
	Uncategorize(ctx context.Context, wordID, categoryID uint) error
}

// ReviewService serves the due-card queue and applies review ratings.
type ReviewService interface {
	Cards(ctx context.Context, userID string) ([]*models.Flashcard, error)
	DueCards(ctx context.Context, userID string) (*ReviewQueue, error)
	RateCard(ctx context.Context, userID string, cardID uint, rating string) (*models.Flashcard, error)
}

// QuizService runs the bounded multiple-choice quiz state machine.
type QuizService interface {
	Start(ctx context.Context, userID string, quizType models.QuizType) (*models.QuizSession, error)
	CurrentQuestion(ctx context.Context, userID string) (*QuestionResponse, error)
	SubmitAnswer(ctx context.Context, userID string, req *SubmitAnswerRequest) error
	Finish(ctx context.Context, userID string) (*QuizSummary, error)
	History(ctx context.Context, userID string, limit int) ([]*models.QuizSession, error)
	SessionDetail(ctx context.Context, userID string, sessionID uint) (*models.QuizSession, error)
}

// ProgressService owns the lifetime and daily rollup counters.
type ProgressService interface {
	Dashboard(ctx context.Context, userID string) (*DashboardResponse, error)
	RecordWordAdded(ctx context.Context, userID string) error
	RecordReviewServed(ctx context.Context, userID string) error
	RecordQuizCompleted(ctx context.Context, userID string, score, correctAnswers, totalAnswers int) (*models.UserProgress, error)
}

// ImportService loads vocabulary entries from spreadsheets.
type ImportService interface {
	ImportWords(ctx context.Context, userID string, r io.Reader) (*models.ImportSummary, error)
}

// ServiceManager bundles all services for handler wiring.
type ServiceManager interface {
	Word() WordService
	Review() ReviewService
	Quiz() QuizService
	Progress() ProgressService
	Import() ImportService
}

// ===== REQUEST / RESPONSE STRUCTS =====

type CreateWordRequest struct {
	Dutch        string            `json:"dutch" validate:"required,min=1,max=200"`
	Translation  string            `json:"translation" validate:"required,min=1,max=200"`
	Source       models.WordSource `json:"source" validate:"required,oneof=EN UK RU"`
	PartOfSpeech string            `json:"part_of_speech" validate:"omitempty,max=50"`
	Context      string            `json:"context" validate:"omitempty,max=1000"`
	Example      string            `json:"example" validate:"omitempty,max=1000"`
}

type WordResponse struct {
	Word    *models.Word `json:"word"`
	Created bool         `json:"created"`
}

// UpdateWordRequest carries partial edits; nil fields are left untouched.
// Dutch and source are fixed at creation.
type UpdateWordRequest struct {
	Translation  *string `json:"translation" validate:"omitempty,min=1,max=200"`
	PartOfSpeech *string `json:"part_of_speech" validate:"omitempty,max=50"`
	Context      *string `json:"context" validate:"omitempty,max=1000"`
	Example      *string `json:"example" validate:"omitempty,max=1000"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type ReviewQueue struct {
	Card      *models.Flashcard `json:"card"`
	Remaining int               `json:"remaining"`
}

type SubmitAnswerRequest struct {
	WordID   uint `json:"word_id" validate:"required"`
	AnswerID uint `json:"answer_id" validate:"required"`
}

// Question is one multiple-choice question. Options contains the target word
// exactly once, in shuffled order.
type Question struct {
	Word    *models.Word   `json:"word"`
	Options []*models.Word `json:"options"`
	Number  int            `json:"number"`
	Total   int            `json:"total"`
	Score   int            `json:"score"`
}

// QuestionResponse is either a question or the completion signal.
type QuestionResponse struct {
	Completed bool      `json:"completed"`
	Question  *Question `json:"question,omitempty"`
}

type QuizSummary struct {
	Session    *models.QuizSession `json:"session"`
	Score      int                 `json:"score"`
	Total      int                 `json:"total"`
	Percentage int                 `json:"percentage"`
}

type DashboardResponse struct {
	Progress   *models.UserProgress       `json:"progress"`
	Today      *models.DailyActivity      `json:"today"`
	QuizStats  *repositories.SessionStats `json:"quiz_stats"`
	Week       []*models.DailyActivity    `json:"week"`
	Flashcards int64                      `json:"flashcards"`
}

// ===== SERVICE MANAGER =====

type serviceManager struct {
	word     WordService
	review   ReviewService
	quiz     QuizService
	progress ProgressService
	imports  ImportService
}

func NewServiceManager(
	repo repositories.Repository,
	store cache.ProgressStore,
	publisher events.ActivityPublisher,
	logger *slog.Logger,
	validator *utils.Validator,
) ServiceManager {
	progress := NewProgressService(repo, logger)
	word := NewWordService(repo, progress, publisher, logger, validator)
	return &serviceManager{
		word:     word,
		review:   NewReviewService(repo, progress, publisher, logger),
		quiz:     NewQuizService(repo, store, progress, publisher, logger, validator),
		progress: progress,
		imports:  NewImportService(word, logger),
	}
}

func (m *serviceManager) Word() WordService { return m.word }
func (m *serviceManager) Review() ReviewService { return m.review }
func (m *serviceManager) Quiz() QuizService { return m.quiz }
func (m *serviceManager) Progress() ProgressService { return m.progress }
func (m *serviceManager) Import() ImportService { return m.imports }

func newEventID() string {
	return watermill.NewUUID()
}

// newActivityEvent fills the event envelope shared by all publishers.
func newActivityEvent(eventType events.EventType, userID string, data interface{}) *events.ActivityEvent {
	return &events.ActivityEvent{
		ID:        newEventID(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "learning-service",
		Version:   "1.0",
		UserID:    userID,
		Data:      data,
	}
}
