package domain

import "errors"

// ErrNotFound is returned by store operations that report misses
// (e.g. DeleteTrip) when no record with the requested ID exists.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")
