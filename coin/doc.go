// Package coin defines the fixed point currency amount used by balances and
// transfers.
package coin
