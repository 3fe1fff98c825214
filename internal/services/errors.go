// internal/services/errors.go
package services

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrStorageDisabled   = errors.New("media storage is not configured")
)
