// Package store holds the storage backends a memo.Cache can be built on.
//
// A backend is a "get-or-absent, set" table. It is insert-only: once a key
// holds a value, later writes for that key are ignored, so the first
// resolved value is the one every reader sees. No backend here evicts.
package store

// Store is the capability a memo.Cache needs from its table.
// Implementations must be safe for concurrent use. Load reports a miss as
// ok=false with a nil error, and Store keeps the first value written for a
// key, ignoring later writes.
type Store[K comparable, V any] interface {
	Load(key K) (value V, ok bool, err error)
	Store(key K, value V) error
}
