package convert

import "errors"

var (
	// ErrEmptySong means parsing produced no slides, so there is nothing to
	// put into a document.
	ErrEmptySong = errors.New("input contains no convertible lyrics")

	// ErrBadTemplate means the supplied template document cannot serve as a
	// style exemplar. Reported before any output is produced.
	ErrBadTemplate = errors.New("unusable template document")
)
