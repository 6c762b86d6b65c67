package service

import "errors"

// Client-input errors. Their messages are part of the HTTP contract and are
// returned verbatim in the {error} payload, so don't reword them.
var (
	ErrUsernameRequired = errors.New("Username is required")
	ErrMissingField     = errors.New("Description and valid duration are required")
	ErrInvalidNumber    = errors.New("Description and valid duration are required")
	ErrInvalidDate      = errors.New("Invalid date format")
	ErrUserNotFound     = errors.New("User not found")
	ErrUsernameTaken    = errors.New("Username already taken")
)

// IsClientError reports whether err should surface to the caller as a
// 200-status {error} payload rather than a 500. Consumers of this API expect
// validation and not-found failures with status 200.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrUsernameRequired,
		ErrMissingField,
		ErrInvalidNumber,
		ErrInvalidDate,
		ErrUserNotFound,
		ErrUsernameTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
