/*
Package account implements the account registry.

An address is "registered" when the registry holds an Account record for it.
Wallets (x/cash) register their owner on first deposit, escrow accounts are
registered explicitly when an escrow is opened. Reaping a wallet removes its
registry entry.
*/
package account
