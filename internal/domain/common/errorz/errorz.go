package errorz

import "errors"

var (
	// ErrIntegrityViolation is returned when a write references a parent row that does not exist.
	ErrIntegrityViolation = errors.New("integrity violation")
	// ErrNotFound is returned when a read targets a member that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConfiguration is returned when the storage is unreachable or the schema is absent.
	ErrConfiguration = errors.New("configuration error")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidInput  = errors.New("invalid input")
)
