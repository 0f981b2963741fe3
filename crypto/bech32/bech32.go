// Package bech32 encodes account payloads as bech32 strings bound to a human
// readable prefix.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/vane/errors"
)

// Decode returns the prefix and the 8 bit payload of a bech32 string.
func Decode(raw string) (string, []byte, error) {
	hrp, groups, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "regroup %q payload: %s", hrp, err)
	}
	return hrp, payload, nil
}

// DecodePrefixed decodes raw and fails unless it carries the wanted prefix.
func DecodePrefixed(wantHRP, raw string) ([]byte, error) {
	hrp, payload, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if hrp != wantHRP {
		return nil, errors.Wrapf(errors.ErrInput, "prefix %q, want %q", hrp, wantHRP)
	}
	return payload, nil
}

// Encode returns the bech32 string of payload under given prefix.
func Encode(hrp string, payload []byte) (string, error) {
	if hrp == "" {
		return "", errors.Wrap(errors.ErrEmpty, "prefix")
	}
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "regroup payload: %s", err)
	}
	raw, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}
