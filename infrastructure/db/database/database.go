package database

import "github.com/pkg/errors"

// ErrNotFound denotes that the requested item was not found in the
// database.
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks whether an error is an ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Database defines the common interface by which data gets accessed in a
// generic key-value database.
type Database interface {
	// Put sets the value for the given key. It overwrites any previous
	// value for that key.
	Put(key []byte, value []byte) error

	// Get gets the value for the given key. It returns ErrNotFound if
	// the given key does not exist.
	Get(key []byte) ([]byte, error)

	// Has returns true if the database contains the given key.
	Has(key []byte) (bool, error)

	// Delete deletes the value for the given key. Will not return an
	// error if the key doesn't exist.
	Delete(key []byte) error

	// Close closes the database.
	Close() error
}
