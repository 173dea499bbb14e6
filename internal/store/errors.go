package store

import "errors"

// Sentinel errors returned by store operations. Handlers map these to HTTP
// status codes; everything else is an internal error.
var (
	// ErrValidation means the input data was malformed (empty name, bad date).
	ErrValidation = errors.New("invalid item data")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPermission means the record exists but belongs to another owner.
	ErrPermission = errors.New("record owned by another account")

	// ErrDuplicate means the input is well-formed but conflicts with an
	// existing record: an item with the same owner, name, and expiry date,
	// or a username already in use.
	ErrDuplicate = errors.New("duplicate record")
)
