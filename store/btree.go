package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/vane/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree.
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// MemStore returns a simple in memory implementation. There is no
// persistence here and it is mostly useful in tests.
func MemStore() CacheableKVStore {
	m := NewMapStore()
	return NewBTreeCacheWrap(m, m.NewBatch(), nil)
}

// BTreeCacheWrap places a btree cache over a KVStore.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store. Use
// ReadOnlyKVStore to emphasize that all writes must go through the Batch.
//
// free may be nil, but set to an existing list to reuse it for memory
// savings.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTree on top of this one.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, NewNonAtomicBatch(b), b.free)
}

// Write syncs with the underlying store and then cleans up.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all data.
func (b BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
	if r, ok := b.batch.(resetter); ok {
		r.Reset()
	}
}

// Set writes to the BTree and to the batch.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil || value == nil {
		panic("nil key or value")
	}
	b.bt.ReplaceOrInsert(setItem{bkey{key}, value})
	return b.batch.Set(key, value)
}

// Delete deletes from the BTree and to the batch.
func (b BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(deletedItem{bkey{key}})
	return b.batch.Delete(key)
}

// Get reads from btree if there, else backing store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	switch t := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Get(key)
	case setItem:
		return t.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", t)
	}
}

// Has reads from btree if there, else backing store.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	switch t := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", t)
	}
}

// bkey implements btree.Item and may be used for queries or embedded in data
// to store.
type bkey struct {
	key []byte
}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type keyer interface {
	Key() []byte
}

type deletedItem struct {
	bkey
}

type setItem struct {
	bkey
	value []byte
}
