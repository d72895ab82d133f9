package domain

import "errors"

var (
	// ErrValidation indicates rejected input: an empty word or sentence,
	// a duplicate word, or counters that do not add up.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates an operation on a word that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRating indicates a review rating outside 1..4.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrPersistence indicates a load or save failure of a persisted store.
	ErrPersistence = errors.New("persistence failure")
)
