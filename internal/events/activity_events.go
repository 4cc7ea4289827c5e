package events

import "time"

// EventType represents the learning activity events the service emits.
type EventType string

const (
	EventWordAdded     EventType = "word.added"
	EventCardReviewed  EventType = "flashcard.reviewed"
	EventQuizStarted   EventType = "quiz.started"
	EventQuizCompleted EventType = "quiz.completed"
)

// ActivityEvent is the envelope for all activity events.
type ActivityEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	UserID    string      `json:"user_id"`
	Data      interface{} `json:"data"`
}

type WordAddedEvent struct {
	WordID      uint   `json:"word_id"`
	Dutch       string `json:"dutch"`
	Translation string `json:"translation"`
	Source      string `json:"source"`
}

type CardReviewedEvent struct {
	FlashcardID uint      `json:"flashcard_id"`
	WordID      uint      `json:"word_id"`
	Rating      string    `json:"rating"`
	Box         int       `json:"box"`
	NextReview  time.Time `json:"next_review"`
}

type QuizStartedEvent struct {
	SessionID uint   `json:"session_id"`
	QuizType  string `json:"quiz_type"`
	Total     int    `json:"total"`
}

type QuizCompletedEvent struct {
	SessionID  uint      `json:"session_id"`
	QuizType   string    `json:"quiz_type"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	FinishedAt time.Time `json:"finished_at"`
}
