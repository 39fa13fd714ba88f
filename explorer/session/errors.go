package session

import "errors"

var ErrUnexpected = errors.New("unexpected failure")
