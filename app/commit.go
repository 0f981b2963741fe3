package app

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining the
// CacheWrap for Deliver, and returning useful state info.
type CommitStore struct {
	committed vane.CommitKVStore
	deliver   vane.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk and sets up the deliver
// cache.
func NewCommitStore(store vane.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
	}, nil
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() vane.CommitID {
	return cs.committed.LatestVersion()
}

// Commit will flush deliver to the underlying store and commit it to disk.
// It then regenerates a new deliver cache.
func (cs *CommitStore) Commit() (vane.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return vane.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}
	cs.deliver = cs.committed.CacheWrap()
	return res, nil
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() vane.CacheableKVStore {
	return cs.deliver
}

// _vn: is a prefix for application internal data.
const chainIDKey = "_vn:chainID"

// loadChainID returns the chain id stored if any.
func loadChainID(kv vane.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store. Returns error if already
// set, or invalid name.
func saveChainID(kv vane.KVStore, chainID string) error {
	if !vane.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chainId")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chainId")
	}
	return nil
}
