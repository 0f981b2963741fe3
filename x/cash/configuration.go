package cash

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/gconf"
)

const confPkg = "cash"

// Configuration of the cash extension. The ticker of the minimum balance is
// the only currency wallets can hold.
type Configuration struct {
	Schema         uint32    `json:"schema,omitempty"`
	MinimumBalance coin.Coin `json:"minimum_balance"`
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
	if err := c.MinimumBalance.Validate(); err != nil {
		return errors.Field("MinimumBalance", err, "invalid coin")
	}
	if !c.MinimumBalance.IsNonNegative() {
		return errors.Field("MinimumBalance", errors.ErrAmount, "cannot be negative")
	}
	return nil
}

// LoadConfiguration returns the configuration stored in the database.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load cash configuration")
	}
	return &conf, nil
}

// SaveConfiguration validates and stores given configuration.
func SaveConfiguration(db gconf.Store, conf *Configuration) error {
	conf.Schema = 1
	return gconf.Save(db, confPkg, conf)
}
