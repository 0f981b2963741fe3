package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
)

// Resolver is the party or mechanism empowered to adjudicate a dispute over
// the escrowed funds. Account is set only for the LegalTeam and Both kinds.
type Resolver struct {
	Kind    ResolverKind `json:"kind"`
	Account vane.Address `json:"account,omitempty"`
}

// NoResolver returns a resolver of the none kind.
func NoResolver() Resolver {
	return Resolver{Kind: ResolverNone}
}

// LegalTeam returns a resolver authorizing given account to sign.
func LegalTeam(account vane.Address) Resolver {
	return Resolver{Kind: ResolverLegalTeam, Account: account}
}

// Governance returns a resolver deferring the decision to a governance vote.
func Governance() Resolver {
	return Resolver{Kind: ResolverGovernance}
}

// Both returns a resolver requiring both the legal team and a governance
// vote.
func Both(account vane.Address) Resolver {
	return Resolver{Kind: ResolverBoth, Account: account}
}

// IsNone returns true if no resolver is set.
func (r Resolver) IsNone() bool {
	return r.Kind == ResolverNone
}

// LegalAccount returns the account of the legal team for the kinds that
// carry one.
func (r Resolver) LegalAccount() (vane.Address, bool) {
	switch r.Kind {
	case ResolverLegalTeam, ResolverBoth:
		return r.Account, true
	}
	return nil, false
}

func (r Resolver) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if _, ok := r.LegalAccount(); ok {
		if err := r.Account.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidResolver, "%s account: %s", r.Kind, err)
		}
		return nil
	}
	if len(r.Account) != 0 {
		return errors.Wrapf(ErrInvalidResolver, "%s resolver cannot have an account", r.Kind)
	}
	return nil
}

// Resolver maps the choice into a resolver. The legal account is required
// by the legal team choice and rejected by every other one.
func (c ResolverChoice) Resolver(legal vane.Address) (Resolver, error) {
	var r Resolver
	switch c {
	case ChoiceNone:
		r = NoResolver()
	case ChoiceLegalTeam:
		if len(legal) == 0 {
			return Resolver{}, errors.Wrap(ErrInvalidResolver, "legal team requires an account")
		}
		r = LegalTeam(legal)
	case ChoiceGovernance:
		r = Governance()
	default:
		return Resolver{}, c.Validate()
	}
	if c != ChoiceLegalTeam && len(legal) != 0 {
		return Resolver{}, errors.Wrapf(ErrInvalidResolver, "%s does not accept an account", c)
	}
	return r, r.Validate()
}

// AccountSigners describes who may release the funds of an escrow. It is
// stored under the payer address.
type AccountSigners struct {
	Schema   uint32       `json:"schema,omitempty"`
	Payee    vane.Address `json:"payee"`
	Payer    vane.Address `json:"payer"`
	Resolver Resolver     `json:"resolver"`
}

// NewAccountSigners returns the signers of an escrow.
func NewAccountSigners(payee, payer vane.Address, r Resolver) *AccountSigners {
	return &AccountSigners{
		Schema:   1,
		Payee:    payee,
		Payer:    payer,
		Resolver: r,
	}
}

func (s *AccountSigners) Marshal() ([]byte, error) {
	return vane.MarshalBinary(s)
}

func (s *AccountSigners) Unmarshal(raw []byte) error {
	return vane.UnmarshalBinary(raw, s)
}

func (s *AccountSigners) Validate() error {
	if s.Schema != 1 {
		return errors.Field("Schema", errors.ErrModel, "must be 1")
	}
	if err := s.Payee.Validate(); err != nil {
		return errors.Field("Payee", err, "invalid address")
	}
	if err := s.Payer.Validate(); err != nil {
		return errors.Field("Payer", err, "invalid address")
	}
	if s.Payee.Equals(s.Payer) {
		return errors.Field("Payee", errors.ErrInput, "payee and payer must differ")
	}
	if err := s.Resolver.Validate(); err != nil {
		return errors.Field("Resolver", err, "invalid resolver")
	}
	if legal, ok := s.Resolver.LegalAccount(); ok {
		if legal.Equals(s.Payer) || legal.Equals(s.Payee) {
			return errors.Field("Resolver.Account", ErrInvalidResolver, "legal team cannot be a party")
		}
	}
	return nil
}

// CallExecuted is the audit record of a release. Records are appended to
// the payer ledger and never modified.
type CallExecuted struct {
	Schema uint32       `json:"schema,omitempty"`
	Payer  vane.Address `json:"payer"`
	Payee  vane.Address `json:"payee"`
	// AllowedMultiID is the escrow the funds were taken from.
	AllowedMultiID vane.Address `json:"allowed_multi_id"`
	// ConfirmedMultiID is the escrow the confirming party referred to.
	// It may differ from AllowedMultiID.
	ConfirmedMultiID vane.Address  `json:"confirmed_multi_id"`
	Proof            []byte        `json:"proof"`
	Height           int64         `json:"height"`
	Time             vane.UnixTime `json:"time"`
}

// ProofLength is the size of a release proof.
const ProofLength = 32

func (c *CallExecuted) Marshal() ([]byte, error) {
	return vane.MarshalBinary(c)
}

func (c *CallExecuted) Unmarshal(raw []byte) error {
	return vane.UnmarshalBinary(raw, c)
}

func (c *CallExecuted) Validate() error {
	if c.Schema != 1 {
		return errors.Field("Schema", errors.ErrModel, "must be 1")
	}
	if err := c.Payer.Validate(); err != nil {
		return errors.Field("Payer", err, "invalid address")
	}
	if err := c.Payee.Validate(); err != nil {
		return errors.Field("Payee", err, "invalid address")
	}
	if err := c.AllowedMultiID.Validate(); err != nil {
		return errors.Field("AllowedMultiID", err, "invalid address")
	}
	if err := c.ConfirmedMultiID.Validate(); err != nil {
		return errors.Field("ConfirmedMultiID", err, "invalid address")
	}
	if len(c.Proof) != ProofLength {
		return errors.Field("Proof", errors.ErrInput, "must be %d bytes", ProofLength)
	}
	if c.Height < 0 {
		return errors.Field("Height", errors.ErrModel, "negative")
	}
	if err := c.Time.Validate(); err != nil {
		return errors.Field("Time", err, "invalid time")
	}
	return nil
}
