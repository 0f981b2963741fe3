package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/gconf"
)

const optKey = "multipay"

// Genesis is the content of the "multipay" genesis section.
type Genesis struct {
	Signers []AccountSigners `json:"signers"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ vane.Initializer = Initializer{}

// FromGenesis stores the configuration, when present, and preset signers.
func (Initializer) FromGenesis(opts vane.Options, db vane.KVStore) error {
	var confOptions vane.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return err
	}
	if confOptions[confPkg] != nil {
		conf := Configuration{Schema: 1}
		if err := gconf.InitConfig(db, opts, confPkg, &conf); err != nil {
			return errors.Wrap(err, "init config")
		}
	}

	var genesis Genesis
	if err := opts.ReadOptions(optKey, &genesis); err != nil {
		return err
	}
	bucket := NewSignerBucket()
	for i := range genesis.Signers {
		s := genesis.Signers[i]
		s.Schema = 1
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signers %d", i)
		}
		if err := bucket.Put(db, &s); err != nil {
			return errors.Wrapf(err, "signers %d", i)
		}
	}
	return nil
}
