package vane

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)
}

// SetDeleter is the write side of a KVStore.
type SetDeleter interface {
	// Set sets the key. Panics on nil key or nil value.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// KVStore is the store every extension is given to operate on. All escrow
// state (signers, executed calls, accounts, balances) lives in it.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// Batch can write multiple ops atomically to an underlying KVStore.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that supports CacheWrapping.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data that we
// can view with all queries. Like Postgresql SAVEPOINT / ROLLBACK TO
// SAVEPOINT.
//
// At the end, call Write to use the cached data, or Discard to drop it.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}

// CommitKVStore is a store that persists state between blocks.
type CommitKVStore interface {
	// Get returns the value at last committed state.
	ReadOnlyKVStore

	// CacheWrap returns a scratch pad to perform actions on.
	CacheWrap() KVCacheWrap

	// Commit the next version to disk, and returns info.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to disk.
	LatestVersion() CommitID
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
