package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/x/account"
)

// EscrowAccounts registers escrow addresses in the account registry.
type EscrowAccounts struct {
	accounts account.Registry
}

func NewEscrowAccounts(r account.Registry) EscrowAccounts {
	return EscrowAccounts{accounts: r}
}

// EnsureRegistered creates the registry record of the escrow when missing.
// An existing record, and so the state of an escrow opened earlier, is left
// untouched.
func (e EscrowAccounts) EnsureRegistered(info vane.BlockInfo, db vane.KVStore, id vane.Address) error {
	created, err := e.accounts.Touch(db, id, info.UnixTime())
	if err != nil {
		return errors.Wrap(err, "register escrow account")
	}
	if created {
		info.Logger().Debug("escrow account registered", "escrow", id)
	}
	return nil
}
