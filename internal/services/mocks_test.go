package services

import (
	"context"
	"time"

	"github.com/nederlandse-workbook/learning-service/internal/cache"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock implementation of repositories.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) GetByID(ctx context.Context, id uint) (*models.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Word), args.Error(1)
}

func (m *MockWordRepository) GetByIDs(ctx context.Context, ids []uint) ([]*models.Word, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Word), args.Error(1)
}

func (m *MockWordRepository) Update(ctx context.Context, word *models.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordRepository) GetOrCreate(ctx context.Context, word *models.Word) (*models.Word, bool, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*models.Word), args.Bool(1), args.Error(2)
}

func (m *MockWordRepository) List(ctx context.Context, filters repositories.WordFilters) ([]*models.Word, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Word), args.Get(1).(int64), args.Error(2)
}

func (m *MockWordRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockWordRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *MockWordRepository) AddToCategory(ctx context.Context, wordID, categoryID uint) error {
	args := m.Called(ctx, wordID, categoryID)
	return args.Error(0)
}

func (m *MockWordRepository) RemoveFromCategory(ctx context.Context, wordID, categoryID uint) error {
	args := m.Called(ctx, wordID, categoryID)
	return args.Error(0)
}

// MockFlashcardRepository is a mock implementation of repositories.FlashcardRepository
type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) GetByID(ctx context.Context, id uint) (*models.Flashcard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) GetByUserAndWord(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) Save(ctx context.Context, card *models.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlashcardRepository) GetOrCreate(ctx context.Context, userID string, wordID uint) (*models.Flashcard, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListByUser(ctx context.Context, userID string) ([]*models.Flashcard, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) WordIDsByUser(ctx context.Context, userID string) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFlashcardRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlashcardRepository) ListDue(ctx context.Context, userID string, now time.Time) ([]*models.Flashcard, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Flashcard), args.Error(1)
}

// MockQuizRepository is a mock implementation of repositories.QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateSession(ctx context.Context, session *models.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockQuizRepository) GetSession(ctx context.Context, id uint) (*models.QuizSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizSession), args.Error(1)
}

func (m *MockQuizRepository) GetSessionWithAnswers(ctx context.Context, id uint) (*models.QuizSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizSession), args.Error(1)
}

func (m *MockQuizRepository) UpdateSession(ctx context.Context, session *models.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockQuizRepository) ListByUser(ctx context.Context, userID string, filters repositories.SessionFilters) ([]*models.QuizSession, int64, error) {
	args := m.Called(ctx, userID, filters)
	return args.Get(0).([]*models.QuizSession), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuizRepository) GetUserStats(ctx context.Context, userID string) (*repositories.SessionStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*repositories.SessionStats), args.Error(1)
}

func (m *MockQuizRepository) CreateAnswer(ctx context.Context, answer *models.QuizAnswer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockQuizRepository) CountAnswers(ctx context.Context, sessionID uint) (int64, int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockProgressRepository is a mock implementation of repositories.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetOrCreate(ctx context.Context, userID string) (*models.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProgress), args.Error(1)
}

func (m *MockProgressRepository) Save(ctx context.Context, progress *models.UserProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// MockActivityRepository is a mock implementation of repositories.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) GetOrCreate(ctx context.Context, userID string, date time.Time) (*models.DailyActivity, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyActivity), args.Error(1)
}

func (m *MockActivityRepository) Save(ctx context.Context, activity *models.DailyActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*models.DailyActivity, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]*models.DailyActivity), args.Error(1)
}

// mockRepository bundles the entity mocks behind repositories.Repository.
type mockRepository struct {
	word      *MockWordRepository
	flashcard *MockFlashcardRepository
	quiz      *MockQuizRepository
	progress  *MockProgressRepository
	activity  *MockActivityRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		word:      new(MockWordRepository),
		flashcard: new(MockFlashcardRepository),
		quiz:      new(MockQuizRepository),
		progress:  new(MockProgressRepository),
		activity:  new(MockActivityRepository),
	}
}

func (m *mockRepository) Word() repositories.WordRepository { return m.word }
func (m *mockRepository) Flashcard() repositories.FlashcardRepository { return m.flashcard }
func (m *mockRepository) Quiz() repositories.QuizRepository { return m.quiz }
func (m *mockRepository) Progress() repositories.ProgressRepository { return m.progress }
func (m *mockRepository) Activity() repositories.ActivityRepository { return m.activity }

// memProgressStore is an in-memory cache.ProgressStore for tests.
type memProgressStore struct {
	data map[string]cache.QuizProgress
}

func newMemProgressStore() *memProgressStore {
	return &memProgressStore{data: make(map[string]cache.QuizProgress)}
}

func (s *memProgressStore) Load(ctx context.Context, userID string) (*cache.QuizProgress, error) {
	p, ok := s.data[userID]
	if !ok {
		return nil, cache.ErrNoProgress
	}
	// Copy, like a (de)serializing store would.
	out := p
	out.WordIDs = append([]uint(nil), p.WordIDs...)
	return &out, nil
}

func (s *memProgressStore) Save(ctx context.Context, userID string, progress *cache.QuizProgress) error {
	stored := *progress
	stored.WordIDs = append([]uint(nil), progress.WordIDs...)
	s.data[userID] = stored
	return nil
}

func (s *memProgressStore) Clear(ctx context.Context, userID string) error {
	delete(s.data, userID)
	return nil
}
