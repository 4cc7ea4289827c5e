package scheduler

import "fmt"

// Rating is the reviewer's assessment of how well a flashcard was recalled.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// IsValid reports whether r is one of the four accepted ratings.
func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

func (r Rating) String() string {
	return string(r)
}

// ParseRating converts a raw string into a Rating.
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown rating %q", s)
	}
	return r, nil
}
