package storage

import "errors"

// Common storage errors
var (
	// ErrOrderNotFound indicates that order was not found in storage.
	// This is an expected branch during reconciliation (triggers a create),
	// not a failure.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateClientID indicates that another order already holds
	// this client_generated_id
	ErrDuplicateClientID = errors.New("duplicate client generated id")
)
