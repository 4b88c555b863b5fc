package domain

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrTooFewOptions      = errors.New("at least 2 options are required")
	ErrNoOptionsSelected  = errors.New("no options selected")
	ErrInvalidOptionIDs   = errors.New("invalid option ids")
	ErrMultipleNotAllowed = errors.New("multiple selections not allowed for this poll")
	ErrPollNotFound       = errors.New("poll not found")
	ErrPollNotActive      = errors.New("poll is not active")
	ErrInternal           = errors.New("internal server error")
)

// IsValidation reports whether err belongs to the malformed-input
// category (400 at the transport boundary).
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrTooFewOptions) ||
		errors.Is(err, ErrNoOptionsSelected) ||
		errors.Is(err, ErrInvalidOptionIDs) ||
		errors.Is(err, ErrMultipleNotAllowed)
}
