package vanetest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/iov-one/vane"
)

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) vane.Address {
	t.Helper()
	raw := make([]byte, vane.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := vane.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid address: %s", err)
	}
	return a
}

// SequenceAddr returns a deterministic address filled with given byte. It is
// handy when a test requires stable and readable identifiers.
func SequenceAddr(b byte) vane.Address {
	raw := make([]byte, vane.AddressLength)
	for i := range raw {
		raw[i] = b
	}
	return raw
}

// DecodeAddr takes a hex encoded address string and returns its raw
// representation. This function ensures that returned value is a valid
// address.
func DecodeAddr(t testing.TB, encoded string) vane.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode %q address: %s", encoded, err)
	}
	a := vane.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("invalid address %q: %s", encoded, err)
	}
	return a
}

// ParseAddress takes an address in a human readable format and returns its
// binary representation.
func ParseAddress(t testing.TB, encodedAddress string) vane.Address {
	t.Helper()
	addr, err := vane.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
