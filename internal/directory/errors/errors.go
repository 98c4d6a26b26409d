package errors

import "errors"

var (
	ErrNotFound = errors.New("provider not found")

	ErrDuplicateID = errors.New("duplicate provider ID")
)
