package multipay

import (
	"fmt"

	"github.com/iov-one/vane/errors"
)

// ResolverKind is the kind of dispute resolution attached to an escrow.
type ResolverKind int32

const (
	ResolverNone ResolverKind = iota
	ResolverLegalTeam
	ResolverGovernance
	ResolverBoth
)

var resolverKindNames = map[ResolverKind]string{
	ResolverNone:       "none",
	ResolverLegalTeam:  "legal_team",
	ResolverGovernance: "governance",
	ResolverBoth:       "both",
}

func (k ResolverKind) String() string {
	if name, ok := resolverKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ResolverKind(%d)", int32(k))
}

func (k ResolverKind) Validate() error {
	if _, ok := resolverKindNames[k]; !ok {
		return errors.Wrapf(ErrInvalidResolver, "unknown kind %d", int32(k))
	}
	return nil
}

func (k ResolverKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ResolverKind) UnmarshalText(raw []byte) error {
	for val, name := range resolverKindNames {
		if name == string(raw) {
			*k = val
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown resolver kind %q", raw)
}

// ResolverChoice is the caller facing selection of a resolver policy.
type ResolverChoice int32

const (
	ChoiceNone ResolverChoice = iota
	ChoiceLegalTeam
	ChoiceGovernance
)

var resolverChoiceNames = map[ResolverChoice]string{
	ChoiceNone:       "none",
	ChoiceLegalTeam:  "legal_team",
	ChoiceGovernance: "governance",
}

func (c ResolverChoice) String() string {
	if name, ok := resolverChoiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ResolverChoice(%d)", int32(c))
}

func (c ResolverChoice) Validate() error {
	if _, ok := resolverChoiceNames[c]; !ok {
		return errors.Wrapf(ErrInvalidResolver, "unknown choice %d", int32(c))
	}
	return nil
}

func (c ResolverChoice) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ResolverChoice) UnmarshalText(raw []byte) error {
	for val, name := range resolverChoiceNames {
		if name == string(raw) {
			*c = val
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown resolver choice %q", raw)
}

// Set implements flag.Value interface.
func (c *ResolverChoice) Set(raw string) error {
	return c.UnmarshalText([]byte(raw))
}

// RevertReason tells why escrowed funds are returned to the payer.
type RevertReason int32

const (
	// WrongPayeeAddress requires the payer to prove the payee address
	// was wrong.
	WrongPayeeAddress RevertReason = iota + 1
	ChangeOfDecision
	// PayeeMisbehaviour is used when a resolver intervenes.
	PayeeMisbehaviour
)

var revertReasonNames = map[RevertReason]string{
	WrongPayeeAddress: "wrong_payee_address",
	ChangeOfDecision:  "change_of_decision",
	PayeeMisbehaviour: "payee_misbehaviour",
}

func (r RevertReason) String() string {
	if name, ok := revertReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RevertReason(%d)", int32(r))
}

func (r RevertReason) Validate() error {
	if _, ok := revertReasonNames[r]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown revert reason %d", int32(r))
	}
	return nil
}

func (r RevertReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *RevertReason) UnmarshalText(raw []byte) error {
	for val, name := range revertReasonNames {
		if name == string(raw) {
			*r = val
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown revert reason %q", raw)
}

// Set implements flag.Value interface.
func (r *RevertReason) Set(raw string) error {
	return r.UnmarshalText([]byte(raw))
}

// PayeeReason is the justification of a payee forcing a release despite
// the payer objection.
type PayeeReason int32

const (
	PayerMisbehaviour PayeeReason = iota + 1
)

var payeeReasonNames = map[PayeeReason]string{
	PayerMisbehaviour: "payer_misbehaviour",
}

func (r PayeeReason) String() string {
	if name, ok := payeeReasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("PayeeReason(%d)", int32(r))
}

func (r PayeeReason) Validate() error {
	if _, ok := payeeReasonNames[r]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown payee reason %d", int32(r))
	}
	return nil
}

// Confirm tells which party confirms a release.
type Confirm int32

const (
	ConfirmPayer Confirm = iota + 1
	ConfirmPayee
)

var confirmNames = map[Confirm]string{
	ConfirmPayer: "payer",
	ConfirmPayee: "payee",
}

func (c Confirm) String() string {
	if name, ok := confirmNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Confirm(%d)", int32(c))
}

func (c Confirm) Validate() error {
	if _, ok := confirmNames[c]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown confirming party %d", int32(c))
	}
	return nil
}
