package ledger

import "errors"

// ErrNotFound is returned when a key or record does not exist.
var ErrNotFound = errors.New("not found")

// Op is a single mutation of a write batch. A nil Value deletes Key.
type Op struct {
	Key   []byte
	Value []byte
}

// Backend is the key-value engine persisting the ledger.
//
// Implementations must apply a Write atomically and durably.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key []byte) ([]byte, error)

	// Write applies every op of the batch atomically.
	Write(ops []Op) error

	// Iterate calls fn for every key with the given prefix, in key order.
	// The slices passed to fn are only valid during the call.
	Iterate(prefix []byte, fn func(key, value []byte) error) error

	// Close releases the backend.
	Close() error
}
