package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
	ErrAlreadyRunning = errors.New("sync already running for this supplier")
	// ErrSupplierNotFound is returned when supplier doesn't exist in storage.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrSupplierExists is returned when supplier with the same id is already stored.
	ErrSupplierExists = errors.New("supplier already exists")
	// ErrNoSelection is returned when quick sync is requested for supplier without saved category selection.
	ErrNoSelection = errors.New("no previous category selection for supplier")
)

// FeedFormatError is returned when supplier feed doesn't contain expected products structure.
type FeedFormatError struct {
	Supplier string
	Path     string
}

func (e *FeedFormatError) Error() string {
	return fmt.Sprintf("feed of supplier %q has no products: element %q not found", e.Supplier, e.Path)
}

// PersistenceError is returned when catalog store write fails.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("can't %s: %s", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SupplierError scopes sync failure to the supplier it happened for.
type SupplierError struct {
	SupplierID string
	Err        error
}

func (e *SupplierError) Error() string {
	return fmt.Sprintf("sync of supplier %s failed: %s", e.SupplierID, e.Err)
}

func (e *SupplierError) Unwrap() error {
	return e.Err
}
