package models

import (
	"time"

	"gorm.io/gorm"
)

type WordSource string

const (
	SourceEnglish   WordSource = "EN"
	SourceUkrainian WordSource = "UK"
	SourceRussian   WordSource = "RU"
)

// Word is a vocabulary entry. (Dutch, Translation, Source) is unique; creating a
// duplicate returns the existing row instead of erroring.
type Word struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Dutch        string     `json:"dutch" gorm:"not null;size:200;uniqueIndex:idx_words_dedup" validate:"required,min=1,max=200"`
	Translation  string     `json:"translation" gorm:"not null;size:200;uniqueIndex:idx_words_dedup" validate:"required,min=1,max=200"`
	Source       WordSource `json:"source" gorm:"not null;size:2;uniqueIndex:idx_words_dedup" validate:"required,oneof=EN UK RU"`
	PartOfSpeech string     `json:"part_of_speech" gorm:"size:50" validate:"omitempty,max=50"`
	Context      string     `json:"context" gorm:"type:text" validate:"omitempty,max=1000"`
	Example      string     `json:"example" gorm:"type:text" validate:"omitempty,max=1000"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	Categorized []CategorizedWord `json:"-" gorm:"foreignKey:WordID"`
}

func (Word) TableName() string {
	return "words"
}

type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`
	Color       string `json:"color" gorm:"size:7;default:#007bff" validate:"omitempty,hexcolor"`

	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

type CategorizedWord struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	WordID     uint `json:"word_id" gorm:"not null;uniqueIndex:idx_categorized_dedup"`
	CategoryID uint `json:"category_id" gorm:"not null;uniqueIndex:idx_categorized_dedup"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	Word     Word     `json:"word" gorm:"foreignKey:WordID"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID"`
}

func (CategorizedWord) TableName() string {
	return "categorized_words"
}

// Flashcard is the per-(user, word) learning state driven by the scheduler.
// Box runs 1 (newest) through 5 (most confident). EaseFactor is carried but not
// consulted by the box-interval algorithm.
type Flashcard struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_flashcards_user_word;index"`
	WordID       uint       `json:"word_id" gorm:"not null;uniqueIndex:idx_flashcards_user_word"`
	Box          int        `json:"box" gorm:"not null;default:1" validate:"min=1,max=5"`
	NextReview   *time.Time `json:"next_review" gorm:"index"`
	LastReviewed *time.Time `json:"last_reviewed"`
	EaseFactor   float64    `json:"ease_factor" gorm:"default:2.5"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Word Word `json:"word" gorm:"foreignKey:WordID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
