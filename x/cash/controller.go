package cash

import (
	"fmt"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/orm"
	"github.com/iov-one/vane/x/account"
)

// ExistenceRequirement tells a transfer what to do when the source would
// fall below the minimum balance.
type ExistenceRequirement int32

const (
	// KeepAlive rejects any transfer that would kill the source wallet.
	KeepAlive ExistenceRequirement = iota
	// AllowDeath reaps the source wallet when it falls below the minimum
	// balance.
	AllowDeath
)

func (r ExistenceRequirement) String() string {
	switch r {
	case KeepAlive:
		return "keep_alive"
	case AllowDeath:
		return "allow_death"
	}
	return fmt.Sprintf("ExistenceRequirement(%d)", int32(r))
}

// Controller is the functionality needed by other extensions to move funds.
type Controller struct {
	bucket   orm.ModelBucket
	accounts account.Registry
}

// NewController returns a controller using the default buckets.
func NewController() Controller {
	return Controller{
		bucket:   orm.NewModelBucket(BucketName),
		accounts: account.NewRegistry(),
	}
}

// Balance returns the balance of given address. An address without a wallet
// holds a zero amount of the native currency.
func (c Controller) Balance(db vane.ReadOnlyKVStore, addr vane.Address) (coin.Coin, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return coin.Coin{}, err
	}
	w, err := c.wallet(db, addr)
	if err != nil {
		return coin.Coin{}, err
	}
	if w == nil {
		return coin.Coin{Ticker: conf.MinimumBalance.Ticker}, nil
	}
	return w.Coin, nil
}

// MoveCoins transfers amount from src to dst.
func (c Controller) MoveCoins(info vane.BlockInfo, db vane.KVStore, src, dst vane.Address, amount coin.Coin, req ExistenceRequirement) error {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := c.checkAmount(conf, amount); err != nil {
		return err
	}

	from, err := c.wallet(db, src)
	if err != nil {
		return err
	}
	if from == nil {
		return errors.Wrapf(errors.ErrNotFound, "no wallet for %s", src)
	}
	if !from.Coin.IsGTE(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %s, required %s", from.Coin, amount)
	}
	if src.Equals(dst) {
		return nil
	}

	remaining, err := from.Coin.Subtract(amount)
	if err != nil {
		return err
	}
	dead := !remaining.IsPositive() || remaining.Compare(conf.MinimumBalance) < 0
	if dead && req == KeepAlive {
		return errors.Wrapf(errors.ErrInsufficientAmount, "transfer would reap %s", src)
	}

	if err := c.credit(db, conf, dst, amount, info.UnixTime()); err != nil {
		return err
	}

	if dead {
		if err := c.reap(db, src); err != nil {
			return err
		}
		info.Logger().Debug("wallet reaped", "address", src, "dust", remaining)
		return nil
	}
	from.Coin = remaining
	return c.bucket.Put(db, src, from)
}

// TransferAll moves the whole balance of src to dst and returns the
// transferred amount.
func (c Controller) TransferAll(info vane.BlockInfo, db vane.KVStore, src, dst vane.Address, req ExistenceRequirement) (coin.Coin, error) {
	from, err := c.wallet(db, src)
	if err != nil {
		return coin.Coin{}, err
	}
	if from == nil {
		return coin.Coin{}, errors.Wrapf(errors.ErrNotFound, "no wallet for %s", src)
	}
	if err := c.MoveCoins(info, db, src, dst, from.Coin, req); err != nil {
		return coin.Coin{}, err
	}
	return from.Coin, nil
}

// Mint creates new funds in the wallet of dst.
func (c Controller) Mint(info vane.BlockInfo, db vane.KVStore, dst vane.Address, amount coin.Coin) error {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := c.checkAmount(conf, amount); err != nil {
		return err
	}
	return c.credit(db, conf, dst, amount, info.UnixTime())
}

func (c Controller) checkAmount(conf *Configuration, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive amount %s", amount)
	}
	if !amount.SameType(conf.MinimumBalance) {
		return errors.Wrapf(errors.ErrCurrency, "only %s is accepted", conf.MinimumBalance.Ticker)
	}
	return nil
}

// credit adds amount to the wallet of dst, creating and registering it when
// missing.
func (c Controller) credit(db vane.KVStore, conf *Configuration, dst vane.Address, amount coin.Coin, now vane.UnixTime) error {
	to, err := c.wallet(db, dst)
	if err != nil {
		return err
	}
	if to == nil {
		if amount.Compare(conf.MinimumBalance) < 0 {
			return errors.Wrapf(errors.ErrInsufficientAmount,
				"new wallet requires at least %s, got %s", conf.MinimumBalance, amount)
		}
		if _, err := c.accounts.Touch(db, dst, now); err != nil {
			return errors.Wrap(err, "register destination")
		}
		return c.bucket.Put(db, dst, NewWallet(amount))
	}
	total, err := to.Coin.Add(amount)
	if err != nil {
		return err
	}
	to.Coin = total
	return c.bucket.Put(db, dst, to)
}

func (c Controller) reap(db vane.KVStore, addr vane.Address) error {
	if err := c.bucket.Delete(db, addr); err != nil {
		return errors.Wrap(err, "delete wallet")
	}
	if err := c.accounts.Delete(db, addr); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "unregister account")
	}
	return nil
}

func (c Controller) wallet(db vane.ReadOnlyKVStore, addr vane.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}
