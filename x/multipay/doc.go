/*
Package multipay implements escrow payments between a payer and a payee.

Opening an escrow records who may release it (the signers), derives the
escrow address from the parties and the optional dispute resolver, registers
that address and locks the funds in it. Releasing moves the whole escrow
balance to the payee and appends an execution record to the payer's ledger.
Reverting moves the escrow balance back to the payer.

Escrow addresses are never stored: they are recomputed from the signers with
a domain separated BLAKE2b-256 hash, see Deriver.
*/
package multipay
