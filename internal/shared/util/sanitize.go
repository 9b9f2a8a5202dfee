package util

import (
	"errors"
	"strings"
)

const maxFileNameLength = 200

// SanitizeFileName rejects traversal patterns and strips characters that are
// unsafe inside a storage key.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, s)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	if len(s) > maxFileNameLength {
		s = s[len(s)-maxFileNameLength:]
	}
	return s, nil
}
