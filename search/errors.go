package search

import "errors"

var (
	// ErrNoMatches indicates the pattern matched nowhere in the buffer.
	ErrNoMatches = errors.New("no matches found")

	// ErrInvalidCapture indicates a capture group number outside the
	// pattern's group range.
	ErrInvalidCapture = errors.New("invalid capture number")

	// ErrNothingSelected indicates an operation that would leave zero
	// selections.
	ErrNothingSelected = errors.New("nothing selected")
)
