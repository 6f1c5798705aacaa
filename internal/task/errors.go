package task

import "errors"

// Domain errors. Every UseCase failure satisfies errors.Is for exactly one of them.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("task not found")
	ErrStoreUnavailable = errors.New("task store unavailable")
)
