package mdmath

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown         = errors.New("markdown content cannot be empty")
	ErrInvalidAggressiveness = errors.New("invalid aggressiveness")
	ErrInvalidAllowList      = errors.New("invalid allow-list identifier")
)
