package vane

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/vane/crypto/bech32"
	"github.com/iov-one/vane/errors"
)

const (
	// AddressLength is the length of all account addresses. It matches the
	// size of a 256 bit digest so that derived addresses are the digest
	// itself.
	AddressLength = 32

	// AddressHRP is the human readable part used for bech32 encoding.
	AddressHRP = "vane"
)

// Address identifies an account: a payer, a payee, a resolver or an escrow.
type Address []byte

// AddressFromDigest decodes a hash output into an address. It never fails:
// the input is read as if it was followed by an infinite stream of zero bytes,
// so a shorter input is zero padded and a longer input is truncated to
// AddressLength bytes.
func AddressFromDigest(digest []byte) Address {
	addr := make(Address, AddressLength)
	copy(addr, digest)
	return addr
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns an independent copy of this address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}

// Validate returns an error if the address is not of the valid size.
func (a Address) Validate() error {
	if len(a) == 0 {
		return errors.Wrap(errors.ErrEmpty, "address")
	}
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address length %d", len(a))
	}
	return nil
}

// String returns the upper case hex representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 returns the bech32 representation using the AddressHRP prefix.
func (a Address) Bech32() (string, error) {
	return bech32.Encode(AddressHRP, a)
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot decode json")
	}
	if enc == "" {
		*a = nil
		return nil
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Set updates this address value. This method implements flag.Value
// interface.
func (a *Address) Set(raw string) error {
	addr, err := ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress accepts an address in one of the supported formats:
//
//   <hex>
//   hex:<hex>
//   bech32:<bech32>
//   vane1...  (bech32 with the AddressHRP prefix)
func ParseAddress(enc string) (Address, error) {
	format := "hex"
	if chunks := strings.SplitN(enc, ":", 2); len(chunks) == 2 {
		format, enc = chunks[0], chunks[1]
	} else if strings.HasPrefix(enc, AddressHRP+"1") {
		format = "bech32"
	}

	var addr Address
	switch format {
	case "hex":
		val, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "cannot decode hex: %s", err)
		}
		addr = val
	case "bech32":
		payload, err := bech32.DecodePrefixed(AddressHRP, enc)
		if err != nil {
			return nil, err
		}
		addr = payload
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
