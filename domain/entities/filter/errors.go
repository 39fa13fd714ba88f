package filter

import "errors"

var (
	ErrInvalidCity  = errors.New("invalid city")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)
