package util

import (
	"errors"
	"strings"
)

// ErrUnsafeFileName rejects names that cannot become a storage key.
var ErrUnsafeFileName = errors.New("unsafe file name")

// SanitizeFileName flattens a client-supplied file name into a single path
// segment. Traversal sequences are rejected outright; separators and control
// characters are replaced so the result can join a storage key or a local
// path without escaping it.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrUnsafeFileName
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20 || r == 0x7f:
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(name))
	if cleaned == "" {
		return "", ErrUnsafeFileName
	}
	return cleaned, nil
}
