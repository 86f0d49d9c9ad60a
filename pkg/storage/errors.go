package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when a transaction is started from a handle
	// that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit/Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)
