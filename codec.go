package vane

import (
	"github.com/iov-one/vane/errors"
	amino "github.com/tendermint/go-amino"
)

// Codec is used to serialize all persisted models and messages.
var Codec = amino.NewCodec()

func init() {
	Codec.RegisterInterface((*Msg)(nil), nil)
}

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as this almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// MarshalBinary serializes given value using the binary bare encoding. The
// result is never nil, so it can always be written to a store.
func MarshalBinary(v interface{}) ([]byte, error) {
	raw, err := Codec.MarshalBinaryBare(v)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "marshal %T: %s", v, err)
	}
	if raw == nil {
		raw = []byte{}
	}
	return raw, nil
}

// UnmarshalBinary loads the state of ptr from its binary representation.
func UnmarshalBinary(raw []byte, ptr interface{}) error {
	if err := Codec.UnmarshalBinaryBare(raw, ptr); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", ptr, err)
	}
	return nil
}
