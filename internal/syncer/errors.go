package syncer

import "errors"

var (
	// ErrEmptySelection is returned when full sync is confirmed without any category selected.
	ErrEmptySelection = errors.New("no categories selected")
	// ErrMissingInput is returned when feed sync request lacks required fields.
	ErrMissingInput = errors.New("missing feed sync input")
	// ErrPreviewOutdated is returned when confirmed preview doesn't belong to the supplier.
	ErrPreviewOutdated = errors.New("sync preview is outdated")
)
