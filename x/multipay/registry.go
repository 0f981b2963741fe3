package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/orm"
)

// SignerBucketName is where AccountSigners are stored, keyed by payer.
const SignerBucketName = "sigs"

// SignerBucket is the AllowedSigners map: payer to AccountSigners.
type SignerBucket struct {
	bucket orm.ModelBucket
}

func NewSignerBucket() SignerBucket {
	return SignerBucket{bucket: orm.NewModelBucket(SignerBucketName)}
}

// Put stores the signers under their payer. Any previous record of that
// payer is overwritten.
func (b SignerBucket) Put(db vane.KVStore, s *AccountSigners) error {
	if err := b.bucket.Put(db, s.Payer, s); err != nil {
		return errors.Wrap(err, "cannot store signers")
	}
	return nil
}

// Get returns the signers stored for given payer or ErrNotFound.
func (b SignerBucket) Get(db vane.ReadOnlyKVStore, payer vane.Address) (*AccountSigners, error) {
	var s AccountSigners
	if err := b.bucket.One(db, payer, &s); err != nil {
		return nil, errors.Wrapf(err, "signers of %s", payer)
	}
	return &s, nil
}

// Has returns true if signers are stored for given payer.
func (b SignerBucket) Has(db vane.ReadOnlyKVStore, payer vane.Address) (bool, error) {
	return b.bucket.Has(db, payer)
}
