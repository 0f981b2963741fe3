/*
Package cash keeps the single currency balance of every address.

Each address owns at most one wallet. A wallet must always hold at least the
configured minimum balance (the existential deposit). A transfer that would
leave the source below it either fails (KeepAlive) or reaps the source
wallet, burning any dust left and removing the address from the account
registry (AllowDeath). A destination that has no wallet yet must receive at
least the minimum balance and is registered on deposit.
*/
package cash
