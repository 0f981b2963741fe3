package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	vane.Persistent
	Validate() error
}

// ModelBucket is a prefixed subspace of the database holding models of a
// single type.
type ModelBucket struct {
	name   string
	prefix []byte
}

// NewModelBucket returns a bucket storing models under given name. The name
// must be 3 to 10 characters of lowercase letters or underscore.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of this bucket.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key used in the database for given model key.
func (b ModelBucket) DBKey(key []byte) []byte {
	return append(append([]byte{}, b.prefix...), key...)
}

// One queries the database for a single model instance. Result is loaded into
// given destination model. This method returns ErrNotFound if the entity does
// not exist in the database.
func (b ModelBucket) One(db vane.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot load %T", dest)
	}
	return nil
}

// Has returns true if a model with given key is stored.
func (b ModelBucket) Has(db vane.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// Put validates and saves given model in the database.
func (b ModelBucket) Put(db vane.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %T", m)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Delete removes an entity with given primary key from the database. It
// returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db vane.KVStore, key []byte) error {
	ok, err := b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	if err := db.Delete(b.DBKey(key)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
