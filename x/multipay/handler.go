package multipay

import (
	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"golang.org/x/crypto/blake2b"
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r vane.Registry, bank Bank) {
	ctrl := NewController(bank)
	r.Handle(PathOpenMsg, OpenHandler{ctrl: ctrl})
	r.Handle(PathReleaseMsg, ReleaseHandler{ctrl: ctrl})
	r.Handle(PathRevertMsg, RevertHandler{ctrl: ctrl})
}

// OpenHandler opens an escrow. The escrow address is returned as the result
// data.
type OpenHandler struct {
	ctrl Controller
}

var _ vane.Handler = OpenHandler{}

func (h OpenHandler) Deliver(info vane.BlockInfo, db vane.KVStore, m vane.Msg) (*vane.DeliverResult, error) {
	msg, ok := m.(*OpenMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, m)
	}
	escrow, err := h.ctrl.OpenWithResolver(info, db, msg.Payer, msg.Payee, msg.Amount, msg.Resolver, msg.LegalAccount)
	if err != nil {
		return nil, err
	}
	return &vane.DeliverResult{Data: escrow, Log: "escrow opened"}, nil
}

// ReleaseHandler releases an escrow to its payee. The release must be
// consistent with the signers stored for the payer: the payee must match and
// the allowed escrow must be the one derived from those signers.
type ReleaseHandler struct {
	ctrl Controller
}

var _ vane.Handler = ReleaseHandler{}

func (h ReleaseHandler) Deliver(info vane.BlockInfo, db vane.KVStore, m vane.Msg) (*vane.DeliverResult, error) {
	msg, ok := m.(*ReleaseMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, m)
	}
	signers, err := h.ctrl.Signers(db, msg.Payer)
	if err != nil {
		return nil, err
	}
	if !signers.Payee.Equals(msg.Payee) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payee does not match the signers")
	}
	escrow, err := h.ctrl.EscrowOf(db, msg.Payer)
	if err != nil {
		return nil, err
	}
	if !escrow.Equals(msg.Allowed) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "signers control %s, not %s", escrow, msg.Allowed)
	}

	proof := msg.Proof
	if len(proof) == 0 {
		if proof, err = MessageProof(msg); err != nil {
			return nil, err
		}
	}
	if err := h.ctrl.Release(info, db, proof, msg.Payer, msg.Payee, msg.Allowed, msg.Confirmed); err != nil {
		return nil, err
	}
	return &vane.DeliverResult{Data: proof, Log: "escrow released"}, nil
}

// MessageProof returns the BLAKE2b-256 hash of the binary encoded message.
func MessageProof(msg vane.Msg) ([]byte, error) {
	raw, err := vane.MarshalBinary(msg)
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum256(raw)
	return digest[:], nil
}

// RevertHandler returns escrowed funds to the payer.
type RevertHandler struct {
	ctrl Controller
}

var _ vane.Handler = RevertHandler{}

func (h RevertHandler) Deliver(info vane.BlockInfo, db vane.KVStore, m vane.Msg) (*vane.DeliverResult, error) {
	msg, ok := m.(*RevertMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, m)
	}
	escrow, err := h.ctrl.Revert(info, db, msg.Payer, msg.Reason)
	if err != nil {
		return nil, err
	}
	return &vane.DeliverResult{Data: escrow, Log: "escrow reverted"}, nil
}
