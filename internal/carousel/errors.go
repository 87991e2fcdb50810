package carousel

import "errors"

var (
	// ErrNoSlides is returned by New when the structure holds no slides.
	ErrNoSlides = errors.New("carousel has no slides")

	// ErrMissingStructure is returned by New when the track or the
	// navigation buttons are absent. Hosts treat it as "do not initialise".
	ErrMissingStructure = errors.New("carousel structure incomplete")

	// ErrIndexOutOfRange is returned by GoTo for indices outside [0, total).
	ErrIndexOutOfRange = errors.New("slide index out of range")
)
