package reminders

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrApplicationMissing = errors.New("application not found")
)
