package dataloader

import "errors"

var (
	ErrDataFileNotFound = errors.New("data file not found")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrReadingData      = errors.New("error reading data")
	ErrUnknownCity      = errors.New("unknown city")
)
