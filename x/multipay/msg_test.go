package multipay

import (
	"testing"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/vanetest"
	"github.com/iov-one/vane/vanetest/assert"
)

func TestOpenMsgValidate(t *testing.T) {
	payer := vanetest.SequenceAddr(1)
	payee := vanetest.SequenceAddr(2)
	legal := vanetest.SequenceAddr(3)

	cases := map[string]struct {
		msg       vane.Msg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: &OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(1, 0, "VAN")},
		},
		"valid with legal team": {
			msg: &OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(1, 0, "VAN"), Resolver: ChoiceLegalTeam, LegalAccount: legal},
		},
		"missing payer": {
			msg:       &OpenMsg{Payee: payee, Amount: coin.NewCoin(1, 0, "VAN")},
			wantField: "Payer",
			wantErr:   errors.ErrEmpty,
		},
		"payee is payer": {
			msg:       &OpenMsg{Payer: payer, Payee: payer, Amount: coin.NewCoin(1, 0, "VAN")},
			wantField: "Payee",
			wantErr:   errors.ErrInput,
		},
		"zero amount": {
			msg:       &OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(0, 0, "VAN")},
			wantField: "Amount",
			wantErr:   errors.ErrAmount,
		},
		"invalid ticker": {
			msg:       &OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(1, 0, "x")},
			wantField: "Amount",
			wantErr:   errors.ErrCurrency,
		},
		"governance with account": {
			msg:       &OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(1, 0, "VAN"), Resolver: ChoiceGovernance, LegalAccount: legal},
			wantField: "Resolver",
			wantErr:   ErrInvalidResolver,
		},
		"unknown resolver": {
			msg:       &OpenMsg{Payer: payer, Payee: payee, Amount: coin.NewCoin(1, 0, "VAN"), Resolver: 7},
			wantField: "Resolver",
			wantErr:   ErrInvalidResolver,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}

func TestReleaseMsgValidate(t *testing.T) {
	payer := vanetest.SequenceAddr(1)
	payee := vanetest.SequenceAddr(2)
	escrow := vanetest.SequenceAddr(3)

	cases := map[string]struct {
		msg       vane.Msg
		wantField string
		wantErr   *errors.Error
	}{
		"valid without proof": {
			msg: &ReleaseMsg{Payer: payer, Payee: payee, Allowed: escrow, Confirmed: escrow},
		},
		"valid with proof": {
			msg: &ReleaseMsg{Payer: payer, Payee: payee, Allowed: escrow, Confirmed: escrow, Proof: make([]byte, ProofLength)},
		},
		"missing confirmed": {
			msg:       &ReleaseMsg{Payer: payer, Payee: payee, Allowed: escrow},
			wantField: "Confirmed",
			wantErr:   errors.ErrEmpty,
		},
		"short allowed": {
			msg:       &ReleaseMsg{Payer: payer, Payee: payee, Allowed: escrow[:20], Confirmed: escrow},
			wantField: "Allowed",
			wantErr:   errors.ErrInput,
		},
		"short proof": {
			msg:       &ReleaseMsg{Payer: payer, Payee: payee, Allowed: escrow, Confirmed: escrow, Proof: []byte("proof")},
			wantField: "Proof",
			wantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}

func TestRevertMsgValidate(t *testing.T) {
	assert.Nil(t, (&RevertMsg{Payer: vanetest.SequenceAddr(1), Reason: PayeeMisbehaviour}).Validate())
	assert.FieldError(t, (&RevertMsg{Reason: PayeeMisbehaviour}).Validate(), "Payer", errors.ErrEmpty)
	assert.FieldError(t, (&RevertMsg{Payer: vanetest.SequenceAddr(1)}).Validate(), "Reason", errors.ErrInput)
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, PathOpenMsg, (&OpenMsg{}).Path())
	assert.Equal(t, PathReleaseMsg, (&ReleaseMsg{}).Path())
	assert.Equal(t, PathRevertMsg, (&RevertMsg{}).Path())
}

func TestMsgCodec(t *testing.T) {
	var msg vane.Msg = &ReleaseMsg{
		Payer:     vanetest.SequenceAddr(1),
		Payee:     vanetest.SequenceAddr(2),
		Allowed:   vanetest.SequenceAddr(3),
		Confirmed: vanetest.SequenceAddr(4),
	}
	raw, err := vane.MarshalBinary(msg)
	assert.Nil(t, err)

	var got vane.Msg
	assert.Nil(t, vane.UnmarshalBinary(raw, &got))
	assert.Equal(t, msg, got)
}
