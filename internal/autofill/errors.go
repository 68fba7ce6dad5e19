package autofill

import "errors"

var ErrInvalidInput = errors.New("invalid input")
