package jobseeker

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a profile, analysis or generated resume
	// does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrMissingJobText is returned when analysis is requested without text.
	ErrMissingJobText = errors.New("job description text is required")
)

// ValidationError carries the individual profile validation issues.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid profile: " + strings.Join(e.Issues, "; ")
}
