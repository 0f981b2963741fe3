package cash

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
)

// BucketName is where we store the balances.
const BucketName = "cash"

// Wallet holds the balance of a single address.
type Wallet struct {
	Schema uint32
	Coin   coin.Coin
}

// NewWallet returns a wallet holding given amount.
func NewWallet(c coin.Coin) *Wallet {
	return &Wallet{Schema: 1, Coin: c}
}

func (w *Wallet) Marshal() ([]byte, error) {
	return vane.MarshalBinary(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return vane.UnmarshalBinary(raw, w)
}

func (w *Wallet) Validate() error {
	if w.Schema != 1 {
		return errors.Field("Schema", errors.ErrModel, "must be 1")
	}
	if err := w.Coin.Validate(); err != nil {
		return errors.Field("Coin", err, "invalid balance")
	}
	if !w.Coin.IsPositive() {
		return errors.Field("Coin", errors.ErrAmount, "balance must be positive")
	}
	return nil
}
