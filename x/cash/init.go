package cash

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/gconf"
)

const optKey = "cash"

// GenesisWallet is used to parse the json from genesis file.
type GenesisWallet struct {
	Address vane.Address `json:"address"`
	Coins   coin.Coin    `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ vane.Initializer = Initializer{}

// FromGenesis stores the configuration and the initial wallets.
func (Initializer) FromGenesis(opts vane.Options, db vane.KVStore) error {
	conf := Configuration{Schema: 1}
	if err := gconf.InitConfig(db, opts, confPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var wallets []GenesisWallet
	if err := opts.ReadOptions(optKey, &wallets); err != nil {
		return err
	}
	ctrl := NewController()
	for i, w := range wallets {
		if err := w.Address.Validate(); err != nil {
			return errors.Wrapf(err, "wallet %d address", i)
		}
		if err := ctrl.checkAmount(&conf, w.Coins); err != nil {
			return errors.Wrapf(err, "wallet %d", i)
		}
		if err := ctrl.credit(db, &conf, w.Address, w.Coins, 0); err != nil {
			return errors.Wrapf(err, "wallet %d", i)
		}
	}
	return nil
}
