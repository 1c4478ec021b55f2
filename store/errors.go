package store

import "errors"

var (
	ErrNotFound       = errors.New("store: record not found")
	ErrImmutable      = errors.New("store: record already exists with different content")
	ErrRecordMismatch = errors.New("store: stored record does not match its identifier")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
