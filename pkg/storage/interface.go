// Package storage defines the storage interfaces of the snapshot archive.
// It abstracts persistence operations and transaction management so that
// different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface that includes every capability the
// archive needs: snapshots and background jobs.
type AllStorage interface {
	SnapshotStorage
	JobStorage
}

// TxStorage is a handle bound to one open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Begin opens a transaction. Transactions do not nest.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction that commits when cb returns nil.
	// Called on a transactional handle, cb joins that transaction instead.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
