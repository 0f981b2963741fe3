package account

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

// Account is the registry record of an address.
type Account struct {
	Schema  uint32
	Created vane.UnixTime
}

// NewAccount returns an account record created at given time.
func NewAccount(created vane.UnixTime) *Account {
	return &Account{Schema: 1, Created: created}
}

func (a *Account) Marshal() ([]byte, error) {
	return vane.MarshalBinary(a)
}

func (a *Account) Unmarshal(raw []byte) error {
	return vane.UnmarshalBinary(raw, a)
}

func (a *Account) Validate() error {
	if a.Schema != 1 {
		return errors.Field("Schema", errors.ErrModel, "must be 1")
	}
	if err := a.Created.Validate(); err != nil {
		return errors.Field("Created", err, "invalid creation time")
	}
	return nil
}
