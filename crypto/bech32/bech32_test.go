package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/vane/errors"
)

func TestDecodeKnownVector(t *testing.T) {
	// bech32 -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}
	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "tiov" {
		t.Fatalf("unexpected hrp %q", hrp)
	}
	if !bytes.Equal(want, payload) {
		t.Fatalf("invalid decode: %X", payload)
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if raw != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestEncodeDecodeEscrowSizedPayload(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 32)
	raw, err := Encode("vane", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	hrp, got, err := Decode(raw)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "vane" || !bytes.Equal(payload, got) {
		t.Fatalf("round trip failed: %q %X", hrp, got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, _, err := Decode("vane1notachecksum"); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}

func TestDecodePrefixed(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01}, 32)
	own, err := Encode("vane", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	other, err := Encode("tiov", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"matching prefix":  {raw: own},
		"other prefix":     {raw: other, wantErr: errors.ErrInput},
		"invalid checksum": {raw: "vane1notachecksum", wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := DecodePrefixed("vane", tc.raw)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %s, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot decode: %s", err)
			}
			if !bytes.Equal(payload, got) {
				t.Fatalf("unexpected payload: %X", got)
			}
		})
	}
}

func TestEncodeRequiresPrefix(t *testing.T) {
	if _, err := Encode("", []byte{1}); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want empty error, got %+v", err)
	}
}
