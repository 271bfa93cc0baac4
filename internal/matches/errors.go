package matches

import "errors"

var (
	// ErrMissingInput is returned when resume or job text is empty.
	ErrMissingInput = errors.New("resume text and job description text are required")
	// ErrNotFound is returned when a match record does not exist.
	ErrNotFound = errors.New("match not found")
	// ErrExtractionFailed is returned when an uploaded resume file cannot
	// be read into text.
	ErrExtractionFailed = errors.New("unable to extract resume text")
)
