package types

import "errors"

// Record store errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrStoreClosed = errors.New("store is closed")
)

// Settings patch errors.
var (
	ErrInvalidPageCap = errors.New("page cap must be at least 1")
	ErrInvalidUnit    = errors.New("unknown unit")
	ErrInvalidTheme   = errors.New("unknown theme")
)
