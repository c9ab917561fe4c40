package inputval

import "errors"

// Sentinel errors returned by the validation functions. Each function
// fails with exactly one of these, so callers can branch with errors.Is.
var (
	// ErrInvalidEmail is returned when input does not form a valid email
	// address after sanitization.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrDomainNotAllowed is returned when an email is well-formed but its
	// domain does not match the required one.
	ErrDomainNotAllowed = errors.New("email domain not allowed")

	// ErrInvalidPhone is returned when input does not form a valid NANP
	// (US) phone number.
	ErrInvalidPhone = errors.New("invalid US phone number")

	// ErrEmptyString is returned when a sanitized string is empty but
	// emptiness is not allowed.
	ErrEmptyString = errors.New("string is empty after sanitization")

	// ErrInvalidURL is returned when input does not form a valid URL with
	// a scheme and host.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidIP is returned when input is not an IPv4 or IPv6 literal.
	ErrInvalidIP = errors.New("invalid IP address")

	// ErrNotANumber is returned when input cannot be parsed as a number
	// after sanitization.
	ErrNotANumber = errors.New("not a valid number")

	// ErrZeroValue is returned when a parsed number is zero but zero is
	// not allowed.
	ErrZeroValue = errors.New("zero value not allowed")
)
