package multipay

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/vanetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSignersValidate(t *testing.T) {
	payer := vanetest.SequenceAddr(1)
	payee := vanetest.SequenceAddr(2)
	legal := vanetest.SequenceAddr(3)

	cases := map[string]struct {
		signers   *AccountSigners
		wantErr   *errors.Error
		wantField string
	}{
		"no resolver": {
			signers: NewAccountSigners(payee, payer, NoResolver()),
		},
		"legal team": {
			signers: NewAccountSigners(payee, payer, LegalTeam(legal)),
		},
		"governance": {
			signers: NewAccountSigners(payee, payer, Governance()),
		},
		"both": {
			signers: NewAccountSigners(payee, payer, Both(legal)),
		},
		"payee equals payer": {
			signers:   NewAccountSigners(payer, payer, NoResolver()),
			wantErr:   errors.ErrInput,
			wantField: "Payee",
		},
		"missing payee": {
			signers:   NewAccountSigners(nil, payer, NoResolver()),
			wantErr:   errors.ErrEmpty,
			wantField: "Payee",
		},
		"short payer": {
			signers:   NewAccountSigners(payee, vane.Address("x"), NoResolver()),
			wantErr:   errors.ErrInput,
			wantField: "Payer",
		},
		"legal team is the payer": {
			signers:   NewAccountSigners(payee, payer, LegalTeam(payer)),
			wantErr:   ErrInvalidResolver,
			wantField: "Resolver.Account",
		},
		"both with the payee as legal team": {
			signers:   NewAccountSigners(payee, payer, Both(payee)),
			wantErr:   ErrInvalidResolver,
			wantField: "Resolver.Account",
		},
		"legal team without account": {
			signers:   NewAccountSigners(payee, payer, LegalTeam(nil)),
			wantErr:   ErrInvalidResolver,
			wantField: "Resolver",
		},
		"governance with account": {
			signers:   NewAccountSigners(payee, payer, Resolver{Kind: ResolverGovernance, Account: legal}),
			wantErr:   ErrInvalidResolver,
			wantField: "Resolver",
		},
		"unknown resolver kind": {
			signers:   NewAccountSigners(payee, payer, Resolver{Kind: 42}),
			wantErr:   ErrInvalidResolver,
			wantField: "Resolver",
		},
		"missing schema": {
			signers:   &AccountSigners{Payee: payee, Payer: payer},
			wantErr:   errors.ErrModel,
			wantField: "Schema",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.signers.Validate()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.wantField, errors.FieldName(err))
		})
	}
}

func TestLegalAccount(t *testing.T) {
	legal := vanetest.SequenceAddr(3)

	got, ok := LegalTeam(legal).LegalAccount()
	assert.True(t, ok)
	assert.Equal(t, legal, got)

	got, ok = Both(legal).LegalAccount()
	assert.True(t, ok)
	assert.Equal(t, legal, got)

	_, ok = Governance().LegalAccount()
	assert.False(t, ok)
	_, ok = NoResolver().LegalAccount()
	assert.False(t, ok)
	assert.True(t, NoResolver().IsNone())
}

func TestResolverChoice(t *testing.T) {
	legal := vanetest.SequenceAddr(3)

	cases := map[string]struct {
		choice  ResolverChoice
		legal   vane.Address
		want    Resolver
		wantErr *errors.Error
	}{
		"none":                     {choice: ChoiceNone, want: NoResolver()},
		"legal team":               {choice: ChoiceLegalTeam, legal: legal, want: LegalTeam(legal)},
		"governance":               {choice: ChoiceGovernance, want: Governance()},
		"legal team without legal": {choice: ChoiceLegalTeam, wantErr: ErrInvalidResolver},
		"legal team invalid legal": {choice: ChoiceLegalTeam, legal: vane.Address("abc"), wantErr: ErrInvalidResolver},
		"governance with account":  {choice: ChoiceGovernance, legal: legal, wantErr: ErrInvalidResolver},
		"none with account":        {choice: ChoiceNone, legal: legal, wantErr: ErrInvalidResolver},
		"unknown choice":           {choice: ResolverChoice(9), wantErr: ErrInvalidResolver},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.choice.Resolver(tc.legal)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestEnumText(t *testing.T) {
	raw, err := json.Marshal(struct {
		Kind   ResolverKind
		Choice ResolverChoice
		Reason RevertReason
	}{ResolverBoth, ChoiceLegalTeam, PayeeMisbehaviour})
	require.NoError(t, err)
	assert.Equal(t, `{"Kind":"both","Choice":"legal_team","Reason":"payee_misbehaviour"}`, string(raw))

	var back struct {
		Kind   ResolverKind
		Choice ResolverChoice
		Reason RevertReason
	}
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, ResolverBoth, back.Kind)
	assert.Equal(t, ChoiceLegalTeam, back.Choice)
	assert.Equal(t, PayeeMisbehaviour, back.Reason)

	var r RevertReason
	if err := r.Set("bored"); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "RevertReason(0)", r.String())
	assert.Error(t, RevertReason(0).Validate())
	assert.Equal(t, "payer_misbehaviour", PayerMisbehaviour.String())
	assert.NoError(t, PayerMisbehaviour.Validate())
	assert.Equal(t, "payee", ConfirmPayee.String())
	assert.NoError(t, ConfirmPayer.Validate())
	assert.Error(t, Confirm(7).Validate())
}

func TestSignersPersistence(t *testing.T) {
	s := NewAccountSigners(vanetest.SequenceAddr(2), vanetest.SequenceAddr(1), LegalTeam(vanetest.SequenceAddr(3)))
	raw, err := s.Marshal()
	require.NoError(t, err)

	var back AccountSigners
	require.NoError(t, back.Unmarshal(raw))
	assert.Equal(t, s, &back)
	assert.NoError(t, back.Validate())
}
