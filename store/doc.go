/*
Package store provides the key value stores used by the ledger.

BTreeCacheWrap is the scratch pad every transaction is executed in: all
writes are kept in a btree and only reach the parent store on Write. A failed
transaction calls Discard and leaves no trace, which is what makes escrow
operations atomic as observed by any other operation.

Subpackage iavl provides the persistent, versioned CommitKVStore.
*/
package store

import "github.com/iov-one/vane"

// Move references for all storage types into this package for shorter names
// everywhere.
type (
	ReadOnlyKVStore  = vane.ReadOnlyKVStore
	KVStore          = vane.KVStore
	SetDeleter       = vane.SetDeleter
	Batch            = vane.Batch
	CacheableKVStore = vane.CacheableKVStore
	KVCacheWrap      = vane.KVCacheWrap
	CommitKVStore    = vane.CommitKVStore
	CommitID         = vane.CommitID
)
