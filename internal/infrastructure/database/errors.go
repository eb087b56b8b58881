package database

import "errors"

// errUnexpectedID guards against a driver returning a non-ObjectID
// inserted id; it should not happen with generated identifiers.
var errUnexpectedID = errors.New("unexpected inserted id type")
