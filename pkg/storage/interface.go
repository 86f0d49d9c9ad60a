// Package storage defines the persistence interfaces the service relies on.
// It abstracts lead persistence, background job enqueueing and transaction
// management so a concrete backend (PostgreSQL) can provide implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of every domain-specific storage capability the
// application needs.
type AllStorage interface {
	LeadStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open database transaction. It
// becomes unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction.
	Commit() error
	// Rollback aborts the transaction.
	Rollback() error
}

// Storage is a non-transactional storage handle that can spawn transactions
// and manages the lifecycle of the underlying connection pool.
type Storage interface {
	AllStorage

	// Close releases the underlying resources. The instance must not be used
	// afterwards.
	Close() error

	// Begin starts a transaction and returns a handle scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a transactional handle, and
	// commits on success or rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
