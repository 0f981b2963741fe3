package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. It is the responsibility of
// the command function to parse the arguments using the flag package. A
// command function is expected to read and write only to provided input and
// output.
//
// Every state changing command executes a single message in a new block and
// commits it, so the state in the home directory is always committed:
//
//   $ vanecli init -home ./state < genesis.json
//   $ vanecli open -home ./state -payer 01.. -payee 02.. -amount "10 VAN"
//   $ vanecli signers -home ./state -payer 01..
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"balance": cmdBalance,
	"derive":  cmdDerive,
	"history": cmdHistory,
	"init":    cmdInit,
	"open":    cmdOpen,
	"release": cmdRelease,
	"revert":  cmdRevert,
	"signers": cmdSigners,
	"version": cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the vane escrow ledger.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash = "dev"
