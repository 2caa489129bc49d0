package counter

import "errors"

var (
	// ErrInvalidSpec is returned when a Spec fails validation.
	ErrInvalidSpec = errors.New("counter: invalid spec")
	// ErrTickFault wraps panics recovered from a tick callback.
	ErrTickFault = errors.New("counter: tick callback fault")
)
