package errors

import "errors"

var (
	ErrProviderUnavailable = errors.New("provider is not accepting bookings")

	ErrAlreadySubmitted = errors.New("booking form already submitted")

	ErrUnknownField = errors.New("unknown booking form field")

	ErrStoreFailure = errors.New("booking store failed")
)
