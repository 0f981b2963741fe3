package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/gconf"
)

const confPkg = "multipay"

// Configuration of the multipay extension.
type Configuration struct {
	Schema uint32 `json:"schema,omitempty"`
	// DomainTag separates escrow derivations of this chain from any other
	// hash of similar input. It must never change once escrows exist.
	DomainTag string `json:"domain_tag"`
}

func (c *Configuration) Marshal() ([]byte, error) {
	return vane.MarshalBinary(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return vane.UnmarshalBinary(raw, c)
}

func (c *Configuration) Validate() error {
	if c.Schema != 1 {
		return errors.Field("Schema", errors.ErrModel, "must be 1")
	}
	if c.DomainTag == "" {
		return errors.Field("DomainTag", errors.ErrEmpty, "required")
	}
	if len(c.DomainTag) > 64 {
		return errors.Field("DomainTag", errors.ErrInput, "at most 64 bytes")
	}
	return nil
}

// LoadDeriver returns a deriver using the configured domain tag, or the
// default one when the chain was not configured.
func LoadDeriver(db gconf.ReadStore) (Deriver, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case err == nil:
		return NewDeriver(conf.DomainTag), nil
	case errors.ErrNotFound.Is(err):
		return NewDeriver(DefaultDomainTag), nil
	default:
		return Deriver{}, errors.Wrap(err, "load multipay configuration")
	}
}
