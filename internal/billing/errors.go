package billing

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrStatusTransition = errors.New("status transition not allowed")
	ErrNegativeValue    = errors.New("gross value must not be negative")
	ErrMissingIssueDate = errors.New("issue date is required")
	ErrConflict         = errors.New("id already exists")
)
