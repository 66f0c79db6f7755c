// Package storage is the client's local persistence layer, keyed like the
// browser storage it replaces: small JSON documents under well-known keys.
// Concurrent writers are last-write-wins; nothing reconciles two processes
// sharing a state directory.
package storage

// Storage is a minimal key-value adapter. Get reports absence instead of
// returning an error: unreadable state is treated the same as missing state.
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}
