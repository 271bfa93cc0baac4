package util

import (
	"errors"
	"strings"
)

// Longest file name the object store will accept. Keys get a random prefix
// on top of this, so stay well under common filesystem limits.
const maxFileNameLen = 200

// SanitizeFileName removes path separators and rejects traversal patterns
// and oversized names.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" || len(s) > maxFileNameLen {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
