package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vane"
	"github.com/iov-one/vane/errors"
	"github.com/iov-one/vane/x/cash"
	"github.com/iov-one/vane/x/multipay"
)

func cmdDerive(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the escrow address controlled by given parties. No state is used.
		`)
		fl.PrintDefaults()
	}
	var (
		payerFl  = flAddress(fl, "payer", "", "Address of the payer.")
		payeeFl  = flAddress(fl, "payee", "", "Address of the payee.")
		legalFl  = flAddress(fl, "legal", "", "Address of the legal team, required by the legal_team resolver.")
		tagFl    = fl.String("tag", multipay.DefaultDomainTag, "Domain tag the chain is configured with.")
		choiceFl = flResolver(fl, "resolver", "none", "Resolver of disputes: none, legal_team or governance.")
	)
	fl.Parse(args)

	resolver, err := choiceFl.Resolver(*legalFl)
	if err != nil {
		return err
	}
	signers := multipay.NewAccountSigners(*payeeFl, *payerFl, resolver)
	if err := signers.Validate(); err != nil {
		return err
	}
	escrow := multipay.NewDeriver(*tagFl).DeriveSigners(signers)
	bech, err := escrow.Bech32()
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "%s\n%s\n", escrow, bech)
	return nil
}

func cmdOpen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Lock funds of the payer in an escrow released to the payee. The escrow
address is printed together with the emitted events.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl   = fl.String("home", "", "Directory where the state is stored.")
		logFl    = fl.String("log", "error", "Log level: debug, info, error or none.")
		payerFl  = flAddress(fl, "payer", "", "Address of the payer.")
		payeeFl  = flAddress(fl, "payee", "", "Address of the payee.")
		amountFl = flCoin(fl, "amount", "", "Amount to lock, for example \"10 VAN\".")
		legalFl  = flAddress(fl, "legal", "", "Address of the legal team, required by the legal_team resolver.")
		choiceFl = flResolver(fl, "resolver", "none", "Resolver of disputes: none, legal_team or governance.")
	)
	fl.Parse(args)

	msg := &multipay.OpenMsg{
		Payer:        *payerFl,
		Payee:        *payeeFl,
		Amount:       *amountFl,
		Resolver:     *choiceFl,
		LegalAccount: *legalFl,
	}
	return deliverAndPrint(*homeFl, *logFl, output, msg, func(data []byte) interface{} {
		return vane.Address(data).String()
	})
}

func cmdRelease(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Release the whole balance of the allowed escrow to the payee. The proof,
generated from the message when not provided, is printed together with the
emitted events.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl      = fl.String("home", "", "Directory where the state is stored.")
		logFl       = fl.String("log", "error", "Log level: debug, info, error or none.")
		payerFl     = flAddress(fl, "payer", "", "Address of the payer.")
		payeeFl     = flAddress(fl, "payee", "", "Address of the payee.")
		allowedFl   = flAddress(fl, "allowed", "", "Escrow the funds are taken from.")
		confirmedFl = flAddress(fl, "confirmed", "", "Escrow confirmed by the signing party. Defaults to the allowed one.")
		proofFl     = flHex(fl, "proof", "", "Optional hex encoded 32 bytes proof.")
	)
	fl.Parse(args)

	confirmed := *confirmedFl
	if len(confirmed) == 0 {
		confirmed = *allowedFl
	}
	msg := &multipay.ReleaseMsg{
		Payer:     *payerFl,
		Payee:     *payeeFl,
		Allowed:   *allowedFl,
		Confirmed: confirmed,
		Proof:     *proofFl,
	}
	return deliverAndPrint(*homeFl, *logFl, output, msg, func(data []byte) interface{} {
		return hex.EncodeToString(data)
	})
}

func cmdRevert(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Return the funds locked in the payer escrow back to the payer.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl   = fl.String("home", "", "Directory where the state is stored.")
		logFl    = fl.String("log", "error", "Log level: debug, info, error or none.")
		payerFl  = flAddress(fl, "payer", "", "Address of the payer.")
		reasonFl = flRevertReason(fl, "reason", "", "Reason: wrong_payee_address, change_of_decision or payee_misbehaviour.")
	)
	fl.Parse(args)

	msg := &multipay.RevertMsg{
		Payer:  *payerFl,
		Reason: *reasonFl,
	}
	return deliverAndPrint(*homeFl, *logFl, output, msg, func(data []byte) interface{} {
		return vane.Address(data).String()
	})
}

type deliverView struct {
	Result interface{} `json:"result"`
	Events []eventView `json:"events"`
}

// deliverAndPrint executes the message and writes its result, rendered
// with given function, and its events.
func deliverAndPrint(home, logLevel string, output io.Writer, msg vane.Msg, render func([]byte) interface{}) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	a, cleanup, err := openApp(home, logLevel)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := deliverInBlock(a, msg)
	if err != nil {
		return err
	}
	return writeJSON(output, deliverView{
		Result: render(res.Data),
		Events: eventViews(res.Events),
	})
}

type signersView struct {
	Signers *multipay.AccountSigners `json:"signers"`
	Escrow  vane.Address             `json:"escrow"`
	Balance string                   `json:"balance"`
}

func cmdSigners(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the signers stored for the payer, the escrow they control and its
balance.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = fl.String("home", "", "Directory where the state is stored.")
		payerFl = flAddress(fl, "payer", "", "Address of the payer.")
	)
	fl.Parse(args)

	if err := payerFl.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	a, cleanup, err := openApp(*homeFl, "none")
	if err != nil {
		return err
	}
	defer cleanup()

	var view signersView
	err = a.View(func(db vane.ReadOnlyKVStore) error {
		ctrl := multipay.NewController(cash.NewController())
		signers, err := ctrl.Signers(db, *payerFl)
		if err != nil {
			return err
		}
		escrow, err := ctrl.EscrowOf(db, *payerFl)
		if err != nil {
			return err
		}
		balance, err := cash.NewController().Balance(db, escrow)
		if err != nil {
			return err
		}
		view = signersView{Signers: signers, Escrow: escrow, Balance: balance.String()}
		return nil
	})
	if err != nil {
		return err
	}
	return writeJSON(output, view)
}

type callView struct {
	Payer            vane.Address  `json:"payer"`
	Payee            vane.Address  `json:"payee"`
	AllowedMultiID   vane.Address  `json:"allowed_multi_id"`
	ConfirmedMultiID vane.Address  `json:"confirmed_multi_id"`
	Proof            string        `json:"proof"`
	Height           int64         `json:"height"`
	Time             vane.UnixTime `json:"time"`
}

func cmdHistory(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print all executed releases of the payer, oldest first.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl  = fl.String("home", "", "Directory where the state is stored.")
		payerFl = flAddress(fl, "payer", "", "Address of the payer.")
	)
	fl.Parse(args)

	if err := payerFl.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	a, cleanup, err := openApp(*homeFl, "none")
	if err != nil {
		return err
	}
	defer cleanup()

	views := make([]callView, 0)
	err = a.View(func(db vane.ReadOnlyKVStore) error {
		calls, err := multipay.NewController(cash.NewController()).History(db, *payerFl)
		if err != nil {
			return err
		}
		for _, c := range calls {
			views = append(views, callView{
				Payer:            c.Payer,
				Payee:            c.Payee,
				AllowedMultiID:   c.AllowedMultiID,
				ConfirmedMultiID: c.ConfirmedMultiID,
				Proof:            hex.EncodeToString(c.Proof),
				Height:           c.Height,
				Time:             c.Time,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}
	return writeJSON(output, views)
}
