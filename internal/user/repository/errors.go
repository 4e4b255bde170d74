package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrDuplicateEmail reports a violation of the unique-email rule,
	// raised by the store (pre-check or unique constraint).
	ErrDuplicateEmail = errors.New("duplicate email")
)
