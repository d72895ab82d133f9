package domain

import "fmt"

// Rating is the learner's recall quality for one review.
type Rating int

const (
	RatingAgain Rating = 1
	RatingHard  Rating = 2
	RatingGood  Rating = 3
	RatingEasy  Rating = 4
)

// Valid reports whether r is one of the four defined ratings.
func (r Rating) Valid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

// Passed reports whether the rating counts as a successful recall.
func (r Rating) Passed() bool {
	return r >= RatingGood
}

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "Again"
	case RatingHard:
		return "Hard"
	case RatingGood:
		return "Good"
	case RatingEasy:
		return "Easy"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// ParseRating validates a raw integer rating.
func ParseRating(n int) (Rating, error) {
	r := Rating(n)
	if !r.Valid() {
		return 0, fmt.Errorf("rating %d must be between 1 and 4: %w", n, ErrInvalidRating)
	}
	return r, nil
}
