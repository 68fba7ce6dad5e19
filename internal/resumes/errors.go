package resumes

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoLatex      = errors.New("resume has no latex source")
)
