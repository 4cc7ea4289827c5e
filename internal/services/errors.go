package services

import (
	"errors"

	apperrors "github.com/nederlandse-workbook/learning-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")

	// Word specific errors
	ErrWordNotFound = errors.New("word not found")

	// Flashcard specific errors
	ErrCardNotFound = errors.New("flashcard not found")

	// Quiz specific errors
	ErrSessionNotFound     = errors.New("quiz session not found")
	ErrSessionAccessDenied = errors.New("access denied to quiz session")
	ErrSessionCompleted    = errors.New("quiz session already completed")
	ErrNoFlashcards        = errors.New("no flashcards to quiz on")
	ErrNoActiveQuiz        = errors.New("no quiz in progress")
	ErrUnsupportedQuizType = errors.New("unsupported quiz type")
)

// Use shared validation errors from the errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IsNotFound checks if err represents a "not found" condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrWordNotFound) ||
		errors.Is(err, ErrCardNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsForbidden checks if err represents an ownership or permission failure.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrSessionAccessDenied)
}

// IsPrecondition checks if err is a recoverable precondition failure: the
// caller took an action whose prerequisites are not met, not a broken request.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoFlashcards) ||
		errors.Is(err, ErrNoActiveQuiz) ||
		errors.Is(err, ErrSessionCompleted) ||
		errors.Is(err, ErrUnsupportedQuizType)
}

// IsValidation checks if err represents a validation failure.
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve ValidationErrors
	return errors.As(err, &ve)
}
