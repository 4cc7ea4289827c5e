package postgres

import (
	"github.com/nederlandse-workbook/learning-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	word      repositories.WordRepository
	flashcard repositories.FlashcardRepository
	quiz      repositories.QuizRepository
	progress  repositories.ProgressRepository
	activity  repositories.ActivityRepository
}

// NewRepository wires all entity repositories onto a shared gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		word:      NewWordPostgreSQL(db),
		flashcard: NewFlashcardPostgreSQL(db),
		quiz:      NewQuizPostgreSQL(db),
		progress:  NewProgressPostgreSQL(db),
		activity:  NewActivityPostgreSQL(db),
	}
}

func (r *gormRepository) Word() repositories.WordRepository { return r.word }
func (r *gormRepository) Flashcard() repositories.FlashcardRepository { return r.flashcard }
func (r *gormRepository) Quiz() repositories.QuizRepository { return r.quiz }
func (r *gormRepository) Progress() repositories.ProgressRepository { return r.progress }
func (r *gormRepository) Activity() repositories.ActivityRepository { return r.activity }
