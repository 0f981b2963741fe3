/*
Package vane defines the common interfaces and types shared by the vane
ledger extensions: account addresses, the key value store abstraction, the
per block execution information, genesis options, events and the binary
codec.

The escrow ("multi payment") protocol itself lives in x/multipay. The
account registry (x/account) and the native currency (x/cash) extensions are
the collaborators it moves funds with, and package app glues all of them
into a transactional application.
*/
package vane
