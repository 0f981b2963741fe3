package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/app"
	"github.com/iov-one/vane/coin"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/x/cash"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Initialize a new chain state in the home directory. The genesis is read from
given file or, when not provided, from the standard input.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl    = fl.String("home", "", "Directory where the state is stored.")
		genesisFl = fl.String("genesis", "", "Optional path to the genesis file.")
		logFl     = fl.String("log", "error", "Log level: debug, info, error or none.")
	)
	fl.Parse(args)

	var gen *app.Genesis
	if *genesisFl != "" {
		var err error
		if gen, err = app.LoadGenesis(*genesisFl); err != nil {
			return err
		}
	} else {
		gen = &app.Genesis{}
		if err := json.NewDecoder(input).Decode(gen); err != nil {
			return errors.Wrapf(errors.ErrInput, "cannot decode genesis: %s", err)
		}
	}
	state, err := gen.AppStateBytes()
	if err != nil {
		return err
	}

	a, cleanup, err := openApp(*homeFl, *logFl)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := a.InitChain(gen.ChainID, state); err != nil {
		return err
	}
	id, err := a.Commit()
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "chain %s initialized, state hash %X\n", gen.ChainID, id.Hash)
	return nil
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the balance of given account.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl = fl.String("home", "", "Directory where the state is stored.")
		addrFl = flAddress(fl, "address", "", "Address of the account.")
	)
	fl.Parse(args)

	if err := addrFl.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	a, cleanup, err := openApp(*homeFl, "none")
	if err != nil {
		return err
	}
	defer cleanup()

	var balance coin.Coin
	err = a.View(func(db vane.ReadOnlyKVStore) error {
		var err error
		balance, err = cash.NewController().Balance(db, *addrFl)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(output, balance)
	return nil
}
