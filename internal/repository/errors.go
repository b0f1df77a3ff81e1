package repository

import "errors"

var (
	// ErrNotFound: no document matched the given identifier or filter.
	ErrNotFound = errors.New("document not found")
	// ErrMalformedID: the identifier is not a valid object id; reported
	// before any store round-trip.
	ErrMalformedID = errors.New("malformatted id")
	// ErrDuplicateUsername: the unique index on username rejected an insert.
	ErrDuplicateUsername = errors.New("username must be unique")
)
