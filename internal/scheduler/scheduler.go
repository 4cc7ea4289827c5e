// Package scheduler implements the 5-box spaced-repetition model that drives
// flashcard review scheduling. It is a pure function of (box, rating, now);
// persistence belongs to the caller.
package scheduler

import "time"

const (
	MinBox = 1
	MaxBox = 5
)

// intervals maps a box to the number of days until the next review.
var intervals = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 30,
}

// Result is the scheduling outcome of a single review.
type Result struct {
	Box          int
	NextReview   time.Time
	LastReviewed time.Time
}

// Interval returns the review interval in days for the given box. Boxes
// outside [MinBox, MaxBox] fall back to one day.
func Interval(box int) int {
	if d, ok := intervals[box]; ok {
		return d
	}
	return 1
}

// Schedule maps the current box and a rating to the new box and due time.
//
//   - again: back to box 1, due in one day regardless of the interval table
//   - hard:  box floors at 2; higher boxes stay where they are
//   - good:  one box up, capped at 5
//   - easy:  two boxes up, capped at 5
//
// A rating outside the known set leaves box and due time untouched; only
// LastReviewed is stamped. That asymmetry matches the production behavior and
// is relied on by callers.
func Schedule(box int, rating Rating, now time.Time) Result {
	res := Result{Box: box, LastReviewed: now}

	switch rating {
	case RatingAgain:
		res.Box = MinBox
		res.NextReview = now.Add(24 * time.Hour)
	case RatingHard:
		res.Box = max(box, 2)
		res.NextReview = now.AddDate(0, 0, Interval(res.Box))
	case RatingGood:
		res.Box = min(box+1, MaxBox)
		res.NextReview = now.AddDate(0, 0, Interval(res.Box))
	case RatingEasy:
		res.Box = min(box+2, MaxBox)
		res.NextReview = now.AddDate(0, 0, Interval(res.Box))
	}

	return res
}
