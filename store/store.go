package store

import "errors"

var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence boundary: whole collections are read and replaced
// under a key, never updated incrementally. Values are serialized as plain
// JSON so the stored state stays human-readable.
type Store interface {
	// Get unmarshals the value stored under key into out. Returns
	// ErrKeyNotFound when the key was never written.
	Get(key string, out any) error
	// Put replaces the value stored under key.
	Put(key string, value any) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}
