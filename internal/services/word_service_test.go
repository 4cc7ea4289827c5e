package services

import (
	"context"
	"testing"

	"github.com/nederlandse-workbook/learning-service/internal/events"
	"github.com/nederlandse-workbook/learning-service/internal/models"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWordTestDeps() (*mockRepository, *events.MockActivityPublisher, WordService) {
	repo := newMockRepository()
	publisher := events.NewMockActivityPublisher(nil)
	logger := testLogger()
	svc := NewWordService(repo, NewProgressService(repo, logger), publisher, logger, utils.NewValidator())
	return repo, publisher, svc
}

func TestWordService_Create_NewWordGetsFlashcardAndCounters(t *testing.T) {
	repo, publisher, svc := newWordTestDeps()
	ctx := context.Background()

	stored := &models.Word{ID: 1, Dutch: "huis", Translation: "house", Source: models.SourceEnglish}
	repo.word.On("GetOrCreate", ctx, mock.MatchedBy(func(w *models.Word) bool {
		return w.Dutch == "huis" && w.Translation == "house"
	})).Return(stored, true, nil)
	repo.flashcard.On("GetOrCreate", ctx, "user-1", uint(1)).
		Return(&models.Flashcard{ID: 5, UserID: "user-1", WordID: 1, Box: 1}, nil)

	userProgress := &models.UserProgress{UserID: "user-1"}
	repo.progress.On("GetOrCreate", ctx, "user-1").Return(userProgress, nil)
	repo.progress.On("Save", ctx, userProgress).Return(nil)
	daily := &models.DailyActivity{UserID: "user-1"}
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).Return(daily, nil)
	repo.activity.On("Save", ctx, daily).Return(nil)

	resp, err := svc.Create(ctx, "user-1", &CreateWordRequest{
		Dutch:       "  huis ",
		Translation: "house",
		Source:      models.SourceEnglish,
	})

	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, stored, resp.Word)
	assert.Equal(t, 1, userProgress.WordsLearned)
	assert.Equal(t, 1, daily.NewWords)
	require.Len(t, publisher.Events, 1)
	assert.Equal(t, events.EventWordAdded, publisher.Events[0].Type)
}

func TestWordService_Create_DuplicateReturnsExisting(t *testing.T) {
	repo, publisher, svc := newWordTestDeps()
	ctx := context.Background()

	stored := &models.Word{ID: 1, Dutch: "huis", Translation: "house", Source: models.SourceEnglish}
	repo.word.On("GetOrCreate", ctx, mock.Anything).Return(stored, false, nil)

	resp, err := svc.Create(ctx, "user-1", &CreateWordRequest{
		Dutch:       "huis",
		Translation: "house",
		Source:      models.SourceEnglish,
	})

	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, stored, resp.Word)
	repo.flashcard.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
	repo.progress.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.Events)
}

func TestWordService_Create_ValidatesRequest(t *testing.T) {
	repo, _, svc := newWordTestDeps()

	_, err := svc.Create(context.Background(), "user-1", &CreateWordRequest{
		Dutch:  "huis",
		Source: models.SourceEnglish,
	})

	assert.True(t, IsValidation(err))
	repo.word.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestWordService_Get_NotFound(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	repo.word.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(ctx, 9)

	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestWordService_Update_PartialFields(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	stored := &models.Word{ID: 1, Dutch: "huis", Translation: "house", PartOfSpeech: "noun"}
	repo.word.On("GetByID", ctx, uint(1)).Return(stored, nil)
	repo.word.On("Update", ctx, stored).Return(nil)

	translation := " home "
	word, err := svc.Update(ctx, 1, &UpdateWordRequest{Translation: &translation})

	require.NoError(t, err)
	assert.Equal(t, "home", word.Translation)
	assert.Equal(t, "noun", word.PartOfSpeech, "untouched fields keep their value")
}

func TestWordService_Delete_NotFound(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	repo.word.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(ctx, 9)

	assert.ErrorIs(t, err, ErrWordNotFound)
	repo.word.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestWordService_CreateCategory_Validates(t *testing.T) {
	repo, _, svc := newWordTestDeps()

	_, err := svc.CreateCategory(context.Background(), &CreateCategoryRequest{})

	assert.True(t, IsValidation(err))
	repo.word.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestWordService_AddFlashcard_ExistingCardIsNoOp(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	repo.word.On("GetByID", ctx, uint(1)).Return(&models.Word{ID: 1}, nil)
	existing := &models.Flashcard{ID: 5, UserID: "user-1", WordID: 1, Box: 3}
	repo.flashcard.On("GetByUserAndWord", ctx, "user-1", uint(1)).Return(existing, nil)

	card, err := svc.AddFlashcard(ctx, "user-1", 1)

	require.NoError(t, err)
	assert.Equal(t, existing, card)
	repo.flashcard.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
	repo.progress.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
}

func TestWordService_AddFlashcard_CreatesAndCounts(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	repo.word.On("GetByID", ctx, uint(1)).Return(&models.Word{ID: 1}, nil)
	repo.flashcard.On("GetByUserAndWord", ctx, "user-1", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	created := &models.Flashcard{ID: 5, UserID: "user-1", WordID: 1, Box: 1}
	repo.flashcard.On("GetOrCreate", ctx, "user-1", uint(1)).Return(created, nil)

	userProgress := &models.UserProgress{UserID: "user-1"}
	repo.progress.On("GetOrCreate", ctx, "user-1").Return(userProgress, nil)
	repo.progress.On("Save", ctx, userProgress).Return(nil)
	repo.activity.On("GetOrCreate", ctx, "user-1", mock.AnythingOfType("time.Time")).
		Return(&models.DailyActivity{UserID: "user-1"}, nil)
	repo.activity.On("Save", ctx, mock.Anything).Return(nil)

	card, err := svc.AddFlashcard(ctx, "user-1", 1)

	require.NoError(t, err)
	assert.Equal(t, created, card)
	assert.Equal(t, 1, userProgress.WordsLearned)
}

func TestWordService_RemoveFlashcard_MissingCardIsNoOp(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	repo.word.On("GetByID", ctx, uint(1)).Return(&models.Word{ID: 1}, nil)
	repo.flashcard.On("GetByUserAndWord", ctx, "user-1", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.RemoveFlashcard(ctx, "user-1", 1)

	require.NoError(t, err)
	repo.flashcard.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestWordService_RemoveFlashcard_DeletesCard(t *testing.T) {
	repo, _, svc := newWordTestDeps()
	ctx := context.Background()

	repo.word.On("GetByID", ctx, uint(1)).Return(&models.Word{ID: 1}, nil)
	repo.flashcard.On("GetByUserAndWord", ctx, "user-1", uint(1)).
		Return(&models.Flashcard{ID: 5, UserID: "user-1", WordID: 1}, nil)
	repo.flashcard.On("Delete", ctx, uint(5)).Return(nil)

	err := svc.RemoveFlashcard(ctx, "user-1", 1)

	require.NoError(t, err)
	repo.flashcard.AssertExpectations(t)
}
