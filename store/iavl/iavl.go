package iavl

import (
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

const cacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	db   dbm.DB
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing. If dir is empty, the
// state is kept in memory only.
func NewCommitStore(dir, name string) (CommitStore, error) {
	var db dbm.DB
	if dir == "" {
		db = dbm.NewMemDB()
	} else {
		ldb, err := dbm.NewGoLevelDB(name, dir)
		if err != nil {
			return CommitStore{}, errors.Wrapf(errors.ErrDatabase, "open %s: %s", dir, err)
		}
		db = ldb
	}
	tree := iavl.NewMutableTree(db, cacheSize)
	return CommitStore{db: db, tree: tree}, nil
}

// Close releases the underlying database. The store must not be used
// afterwards.
func (s CommitStore) Close() {
	s.db.Close()
}

// Get returns the value at last committed state. Returns nil iff key
// doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.Get(key)
	return val, nil
}

// Has checks the existence of the key at last committed state.
func (s CommitStore) Has(key []byte) (bool, error) {
	return s.tree.Has(key), nil
}

// Commit the next version to disk, and returns info.
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a crash
// during the last commit, it is guaranteed to return a stable state, even if
// older.
func (s CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// CacheWrap gives us a savepoint to perform actions. Writing the cache
// applies all changes to the working tree, they are persisted on the next
// Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, store.NewNonAtomicBatch(treeWriter{s.tree}), nil)
}

// treeWriter applies batch operations directly to the working tree.
type treeWriter struct {
	tree *iavl.MutableTree
}

func (w treeWriter) Set(key, value []byte) error {
	w.tree.Set(key, value)
	return nil
}

func (w treeWriter) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}
