package account

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/orm"
)

// BucketName is where we store the account records.
const BucketName = "acct"

// Registry is the account registry. All methods are stateless, the registry
// can be created once and shared.
type Registry struct {
	bucket orm.ModelBucket
}

// NewRegistry returns a registry using the default bucket.
func NewRegistry() Registry {
	return Registry{bucket: orm.NewModelBucket(BucketName)}
}

// Exists returns true if the address is registered.
func (r Registry) Exists(db vane.ReadOnlyKVStore, addr vane.Address) (bool, error) {
	return r.bucket.Has(db, addr)
}

// Get returns the account record. ErrNotFound is returned for unknown
// addresses.
func (r Registry) Get(db vane.ReadOnlyKVStore, addr vane.Address) (*Account, error) {
	var a Account
	if err := r.bucket.One(db, addr, &a); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &a, nil
}

// Set writes the account record, overwriting any existing one.
func (r Registry) Set(db vane.KVStore, addr vane.Address, a *Account) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return r.bucket.Put(db, addr, a)
}

// Delete removes the account record. ErrNotFound is returned for unknown
// addresses.
func (r Registry) Delete(db vane.KVStore, addr vane.Address) error {
	if err := r.bucket.Delete(db, addr); err != nil {
		return errors.Wrapf(err, "account %s", addr)
	}
	return nil
}

// Touch registers the address if it is not registered yet. It returns true
// if a new record was created.
func (r Registry) Touch(db vane.KVStore, addr vane.Address, now vane.UnixTime) (bool, error) {
	ok, err := r.Exists(db, addr)
	if err != nil || ok {
		return false, err
	}
	if err := r.Set(db, addr, NewAccount(now)); err != nil {
		return false, err
	}
	return true, nil
}

// Lookup resolves an address given by a caller into the account identifier
// used by the ledger. Account identifiers are the addresses themselves, so
// this only ensures the address is well formed.
func (r Registry) Lookup(addr vane.Address) (vane.Address, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "lookup")
	}
	return addr.Clone(), nil
}
