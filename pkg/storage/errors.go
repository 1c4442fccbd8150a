package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already bound
	// to a transaction.
	ErrAlreadyInTx = errors.New("storage: transaction already open")
	// ErrNotInTx is returned by Commit and Rollback on a pooled handle.
	ErrNotInTx = errors.New("storage: no open transaction")
)
