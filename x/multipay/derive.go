package multipay

import (
	"github.com/iov-one/vane"
	"golang.org/x/crypto/blake2b"
)

// DefaultDomainTag is prefixed to every hashed escrow derivation input.
const DefaultDomainTag = "vane/salt"

var (
	bothMarker       = []byte("both")
	governanceMarker = []byte("governance")
)

// Deriver computes escrow addresses. The result depends on the domain tag,
// the order of the parties and the resolver.
//
// Hashed input is the concatenation of
//   tag | payee | payer                        no resolver
//   tag | payee | payer | legal                legal team
//   tag | payee | payer | legal | "both"       both
//   tag | payee | payer | "governance"         governance
type Deriver struct {
	tag []byte
}

// NewDeriver returns a deriver using given domain tag.
func NewDeriver(tag string) Deriver {
	return Deriver{tag: []byte(tag)}
}

// Derive returns the escrow address of given parties.
func (d Deriver) Derive(payee, payer vane.Address, r Resolver) vane.Address {
	input := make([]byte, 0, len(d.tag)+4*vane.AddressLength)
	input = append(input, d.tag...)
	input = append(input, payee...)
	input = append(input, payer...)
	switch r.Kind {
	case ResolverLegalTeam:
		input = append(input, r.Account...)
	case ResolverBoth:
		input = append(input, r.Account...)
		input = append(input, bothMarker...)
	case ResolverGovernance:
		input = append(input, governanceMarker...)
	}
	digest := blake2b.Sum256(input)
	return vane.AddressFromDigest(digest[:])
}

// DeriveSigners returns the escrow address controlled by given signers.
func (d Deriver) DeriveSigners(s *AccountSigners) vane.Address {
	return d.Derive(s.Payee, s.Payer, s.Resolver)
}

// DeriveEscrowAddress derives using the default domain tag.
func DeriveEscrowAddress(payee, payer vane.Address, r Resolver) vane.Address {
	return NewDeriver(DefaultDomainTag).Derive(payee, payer, r)
}
