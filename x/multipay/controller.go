package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/x/account"
	"github.com/iov-one/vane/x/cash"
)

// Bank is the currency functionality escrows depend on. It is implemented by
// cash.Controller.
type Bank interface {
	MoveCoins(info vane.BlockInfo, db vane.KVStore, src, dst vane.Address, amount coin.Coin, req cash.ExistenceRequirement) error
	TransferAll(info vane.BlockInfo, db vane.KVStore, src, dst vane.Address, req cash.ExistenceRequirement) (coin.Coin, error)
	Balance(db vane.ReadOnlyKVStore, addr vane.Address) (coin.Coin, error)
}

var _ Bank = cash.Controller{}

// Controller implements the escrow lifecycle. It does not roll back its
// writes on failure: every call must be executed within a cache wrapped
// store that is discarded when an error is returned.
type Controller struct {
	bank     Bank
	accounts account.Registry
	escrows  EscrowAccounts
	signers  SignerBucket
	ledger   TxnLedger
}

// NewController returns a controller moving funds with given bank.
func NewController(bank Bank) Controller {
	accounts := account.NewRegistry()
	return Controller{
		bank:     bank,
		accounts: accounts,
		escrows:  NewEscrowAccounts(accounts),
		signers:  NewSignerBucket(),
		ledger:   NewTxnLedger(),
	}
}

// Open locks amount of the payer funds in an escrow without a resolver and
// returns the escrow address.
func (c Controller) Open(info vane.BlockInfo, db vane.KVStore, payer, payee vane.Address, amount coin.Coin) (vane.Address, error) {
	return c.OpenWithResolver(info, db, payer, payee, amount, ChoiceNone, nil)
}

// OpenWithResolver locks amount of the payer funds in an escrow governed by
// the chosen resolver and returns the escrow address. Signers are stored
// first, replacing any previous signers of that payer. Transfer errors are
// returned unchanged.
//
// A payer has a single signers record. Opening towards a different payee or
// resolver leaves the funds of the earlier escrow in place, but no release
// or revert can reach them anymore.
func (c Controller) OpenWithResolver(
	info vane.BlockInfo,
	db vane.KVStore,
	payer, payee vane.Address,
	amount coin.Coin,
	choice ResolverChoice,
	legal vane.Address,
) (vane.Address, error) {
	resolver, err := choice.Resolver(legal)
	if err != nil {
		return nil, err
	}
	signers := NewAccountSigners(payee, payer, resolver)
	if err := signers.Validate(); err != nil {
		return nil, errors.Wrap(err, "signers")
	}
	if err := c.signers.Put(db, signers); err != nil {
		return nil, err
	}

	deriver, err := LoadDeriver(db)
	if err != nil {
		return nil, err
	}
	escrow := deriver.DeriveSigners(signers)
	if err := c.escrows.EnsureRegistered(info, db, escrow); err != nil {
		return nil, err
	}
	info.EmitEvent(multiAccountCreated(info, escrow))

	if err := c.bank.MoveCoins(info, db, payer, escrow, amount, cash.KeepAlive); err != nil {
		return nil, err
	}
	info.EmitEvent(balanceTransferredAndLocked(info, escrow, payer))

	info.Logger().Info("escrow opened",
		"payer", payer, "payee", payee, "escrow", escrow,
		"resolver", resolver.Kind, "amount", amount)
	return escrow, nil
}

// Release moves the whole balance of the allowed escrow to the payee and
// appends an execution record to the payer ledger. The confirmed escrow is
// only recorded. Any failure of the transfer is reported as
// ErrMultiSigCallFailed.
func (c Controller) Release(
	info vane.BlockInfo,
	db vane.KVStore,
	proof []byte,
	payer, payee, allowed, confirmed vane.Address,
) error {
	if len(proof) != ProofLength {
		return errors.Wrapf(errors.ErrInput, "proof must be %d bytes", ProofLength)
	}
	dest, err := c.accounts.Lookup(payee)
	if err != nil {
		return errors.Wrapf(ErrMultiSigCallFailed, "payee: %s", err)
	}
	moved, err := c.bank.TransferAll(info, db, allowed, dest, cash.AllowDeath)
	if err != nil {
		return errors.Wrapf(ErrMultiSigCallFailed, "transfer from %s: %s", allowed, err)
	}

	record := &CallExecuted{
		Schema:           1,
		Payer:            payer,
		Payee:            dest,
		AllowedMultiID:   allowed,
		ConfirmedMultiID: confirmed,
		Proof:            append([]byte{}, proof...),
		Height:           info.Height(),
		Time:             info.UnixTime(),
	}
	seq, err := c.ledger.Append(db, record)
	if err != nil {
		return err
	}
	info.EmitEvent(callExecuted(info, confirmed))

	info.Logger().Info("escrow released",
		"payer", payer, "payee", dest, "escrow", allowed,
		"confirmed", confirmed, "amount", moved, "seq", seq)
	return nil
}

// Revert moves the whole balance of the escrow described by the payer
// signers back to the payer. Any failure of the transfer is reported as
// ErrMultiSigCallFailed.
func (c Controller) Revert(info vane.BlockInfo, db vane.KVStore, payer vane.Address, reason RevertReason) (vane.Address, error) {
	if err := reason.Validate(); err != nil {
		return nil, err
	}
	signers, err := c.signers.Get(db, payer)
	if err != nil {
		return nil, err
	}
	deriver, err := LoadDeriver(db)
	if err != nil {
		return nil, err
	}
	escrow := deriver.DeriveSigners(signers)
	moved, err := c.bank.TransferAll(info, db, escrow, payer, cash.AllowDeath)
	if err != nil {
		return nil, errors.Wrapf(ErrMultiSigCallFailed, "transfer from %s: %s", escrow, err)
	}
	info.EmitEvent(fundsReverted(info, escrow, payer, reason))

	info.Logger().Info("escrow reverted",
		"payer", payer, "escrow", escrow, "reason", reason, "amount", moved)
	return escrow, nil
}

// Signers returns the signers stored for given payer.
func (c Controller) Signers(db vane.ReadOnlyKVStore, payer vane.Address) (*AccountSigners, error) {
	return c.signers.Get(db, payer)
}

// EscrowOf returns the address of the escrow currently described by the
// payer signers.
func (c Controller) EscrowOf(db vane.ReadOnlyKVStore, payer vane.Address) (vane.Address, error) {
	signers, err := c.signers.Get(db, payer)
	if err != nil {
		return nil, err
	}
	deriver, err := LoadDeriver(db)
	if err != nil {
		return nil, err
	}
	return deriver.DeriveSigners(signers), nil
}

// History returns all executed calls of given payer in execution order.
func (c Controller) History(db vane.ReadOnlyKVStore, payer vane.Address) ([]*CallExecuted, error) {
	return c.ledger.All(db, payer)
}
