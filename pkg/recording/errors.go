package recording

import "errors"

// Generation-aborting parse failures. Message wording is part of the
// contract: callers and tests match on the "Empty" and "no actions"
// substrings.
var (
	// ErrEmptyInput is returned when the recording has no records at all.
	ErrEmptyInput = errors.New("recording: Empty input, nothing to generate")

	// ErrHeaderOnly is returned when the recording holds a header but no
	// actions recorded after it.
	ErrHeaderOnly = errors.New("recording: header present but no actions recorded")
)
