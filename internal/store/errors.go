package store

import "errors"

var (
	// ErrNotFound is returned when a lookup or delete names a row that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAccountInUse is returned when deleting an account that journal
	// lines still reference. Account deletion is restricted, not cascaded.
	ErrAccountInUse = errors.New("account has journal lines")

	// ErrDuplicate is returned when a create violates a uniqueness rule
	// (account code, party name, username).
	ErrDuplicate = errors.New("already exists")
)
