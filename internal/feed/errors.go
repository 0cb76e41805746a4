package feed

import "errors"

// ErrUnknownDialect is returned for dialect names no parser is registered for.
var ErrUnknownDialect = errors.New("unknown feed dialect")
