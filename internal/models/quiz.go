package models

import (
	"time"

	"gorm.io/datatypes"
)

type QuizType string

const (
	QuizMultipleChoice QuizType = "MC"
	QuizFillBlank      QuizType = "FL"
	QuizSpeedRound     QuizType = "SP"
)

// QuizSession is one run of a quiz. Total is fixed at start; Score and
// CompletedAt are written exactly once at finalization.
type QuizSession struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	UserID   string   `json:"user_id" gorm:"not null;size:255;index"`
	QuizType QuizType `json:"quiz_type" gorm:"not null;size:2" validate:"required,oneof=MC FL SP"`
	Score    int      `json:"score" gorm:"default:0"`
	Total    int      `json:"total" gorm:"default:0"`

	// Snapshot of the word ids drawn for this run, in question order.
	WordIDs datatypes.JSONSlice[uint] `json:"word_ids" gorm:"type:jsonb"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relations
	User    User         `json:"-" gorm:"foreignKey:UserID"`
	Answers []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:SessionID"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

// QuizAnswer is one submitted answer within a session. Append-only. UserAnswer
// holds the displayed option text denormalized at write time, so the record
// survives deletion of the answer word.
type QuizAnswer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SessionID  uint      `json:"session_id" gorm:"not null;index"`
	WordID     uint      `json:"word_id" gorm:"not null"`
	UserAnswer string    `json:"user_answer" gorm:"not null;size:200"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null"`
	AnsweredAt time.Time `json:"answered_at"`

	// Relations
	Session QuizSession `json:"-" gorm:"foreignKey:SessionID"`
	Word    Word        `json:"word" gorm:"foreignKey:WordID"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
