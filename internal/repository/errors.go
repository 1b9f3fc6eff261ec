package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrUnsupportedScheme is returned by Open when the connection string names a
// backend this service cannot talk to.
var ErrUnsupportedScheme = errors.New("unsupported connection string scheme")
