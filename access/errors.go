package access

import "errors"

var (
	ErrAttribute   = errors.New("attribute not found")
	ErrKey         = errors.New("key not found")
	ErrIndex       = errors.New("index out of range")
	ErrLookup      = errors.New("value does not support lookup")
	ErrNotCallable = errors.New("value is not callable")
)
