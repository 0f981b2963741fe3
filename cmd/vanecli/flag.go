package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/x/multipay"
)

// flValue registers value under given name. A non empty default is parsed
// with the value's own Set method. An invalid default is a programming
// error and terminates the process.
func flValue(fl *flag.FlagSet, name, defaultVal, usage string, value flag.Value) {
	if defaultVal != "" {
		if err := value.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q flag default %q. %s\n", name, defaultVal, err)
			os.Exit(2)
		}
	}
	fl.Var(value, name, usage)
}

// flAddress declares an address flag. Both hex and bech32 forms are
// accepted.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *vane.Address {
	var a vane.Address
	flValue(fl, name, defaultVal, usage, &a)
	return &a
}

// flCoin declares a coin flag in the human readable format, for example
// "10.5 VAN".
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	flValue(fl, name, defaultVal, usage, &c)
	return &c
}

// flHex declares a hex encoded binary flag.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b flagbyte
	flValue(fl, name, defaultVal, usage, &b)
	return (*[]byte)(&b)
}

// flResolver declares the dispute resolver selection of an escrow. The
// zero value is no resolver.
func flResolver(fl *flag.FlagSet, name, defaultVal, usage string) *multipay.ResolverChoice {
	var c multipay.ResolverChoice
	flValue(fl, name, defaultVal, usage, &c)
	return &c
}

// flRevertReason declares the reason of returning escrowed funds to the
// payer.
func flRevertReason(fl *flag.FlagSet, name, defaultVal, usage string) *multipay.RevertReason {
	var r multipay.RevertReason
	flValue(fl, name, defaultVal, usage, &r)
	return &r
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}
