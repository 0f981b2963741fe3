package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
)

// Paths of the messages handled by this extension.
const (
	PathOpenMsg    = "multipay/open"
	PathReleaseMsg = "multipay/release"
	PathRevertMsg  = "multipay/revert"
)

func init() {
	vane.Codec.RegisterConcrete(&OpenMsg{}, PathOpenMsg, nil)
	vane.Codec.RegisterConcrete(&ReleaseMsg{}, PathReleaseMsg, nil)
	vane.Codec.RegisterConcrete(&RevertMsg{}, PathRevertMsg, nil)
}

// OpenMsg locks funds of the payer in an escrow.
type OpenMsg struct {
	Payer    vane.Address   `json:"payer"`
	Payee    vane.Address   `json:"payee"`
	Amount   coin.Coin      `json:"amount"`
	Resolver ResolverChoice `json:"resolver"`
	// LegalAccount is required by the legal team resolver only.
	LegalAccount vane.Address `json:"legal_account,omitempty"`
}

var _ vane.Msg = (*OpenMsg)(nil)

func (OpenMsg) Path() string {
	return PathOpenMsg
}

func (m *OpenMsg) Validate() error {
	if err := m.Payer.Validate(); err != nil {
		return errors.Field("Payer", err, "invalid address")
	}
	if err := m.Payee.Validate(); err != nil {
		return errors.Field("Payee", err, "invalid address")
	}
	if m.Payer.Equals(m.Payee) {
		return errors.Field("Payee", errors.ErrInput, "payee and payer must differ")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Field("Amount", err, "invalid amount")
	}
	if !m.Amount.IsPositive() {
		return errors.Field("Amount", errors.ErrAmount, "must be positive")
	}
	if _, err := m.Resolver.Resolver(m.LegalAccount); err != nil {
		return errors.Field("Resolver", err, "invalid resolver")
	}
	return nil
}

// ReleaseMsg moves escrowed funds to the payee.
type ReleaseMsg struct {
	Payer     vane.Address `json:"payer"`
	Payee     vane.Address `json:"payee"`
	Allowed   vane.Address `json:"allowed_multi_id"`
	Confirmed vane.Address `json:"confirmed_multi_id"`
	// Proof ties the execution record to the request. When empty, the
	// hash of the message is used.
	Proof []byte `json:"proof,omitempty"`
}

var _ vane.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return PathReleaseMsg
}

func (m *ReleaseMsg) Validate() error {
	if err := m.Payer.Validate(); err != nil {
		return errors.Field("Payer", err, "invalid address")
	}
	if err := m.Payee.Validate(); err != nil {
		return errors.Field("Payee", err, "invalid address")
	}
	if err := m.Allowed.Validate(); err != nil {
		return errors.Field("Allowed", err, "invalid address")
	}
	if err := m.Confirmed.Validate(); err != nil {
		return errors.Field("Confirmed", err, "invalid address")
	}
	if n := len(m.Proof); n != 0 && n != ProofLength {
		return errors.Field("Proof", errors.ErrInput, "must be %d bytes", ProofLength)
	}
	return nil
}

// RevertMsg returns escrowed funds to the payer.
type RevertMsg struct {
	Payer  vane.Address `json:"payer"`
	Reason RevertReason `json:"reason"`
}

var _ vane.Msg = (*RevertMsg)(nil)

func (RevertMsg) Path() string {
	return PathRevertMsg
}

func (m *RevertMsg) Validate() error {
	if err := m.Payer.Validate(); err != nil {
		return errors.Field("Payer", err, "invalid address")
	}
	if err := m.Reason.Validate(); err != nil {
		return errors.Field("Reason", err, "invalid reason")
	}
	return nil
}
