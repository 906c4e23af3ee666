package ecash

import (
	"sort"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// lagrangeMultipliers computes, for the given set of distinct nonzero
// signer indices, the Lagrange coefficients lambda_i = prod_{j!=i} j/(j-i)
// that reconstruct a degree-(|indices|-1) polynomial's value at 0 from its
// values at the indices.
func lagrangeMultipliers(indices []uint64) []fr.Element {
	scalars := make([]fr.Element, len(indices))
	for i, idx := range indices {
		scalars[i].SetUint64(idx)
	}

	coeffs := make([]fr.Element, len(scalars))
	for i := range scalars {
		num := one()
		den := one()
		for j := range scalars {
			if i == j {
				continue
			}
			num.Mul(&num, &scalars[j])

			var diff fr.Element
			diff.Sub(&scalars[j], &scalars[i])
			den.Mul(&den, &diff)
		}
		if den.IsZero() {
			panic("ecash: lagrange_multipliers: duplicate signer index")
		}
		var denInv fr.Element
		denInv.Inverse(&den)
		coeffs[i].Mul(&num, &denInv)
	}
	return coeffs
}

// AggregateSignatureShares combines signature shares from a set of signer
// indices (keyed from 1, never 0) into an aggregate Signature via Lagrange
// interpolation at 0. An empty mapping is a contract violation and panics.
func AggregateSignatureShares(shares map[uint64]*SignatureShare) *Signature {
	if len(shares) == 0 {
		panic("ecash: aggregate_signature_shares: empty share set")
	}

	indices := make([]uint64, 0, len(shares))
	for idx := range shares {
		if idx == 0 {
			panic("ecash: aggregate_signature_shares: index 0 is reserved for the aggregate secret")
		}
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	coeffs := lagrangeMultipliers(indices)

	var sigma bls12381.G1Affine
	for i, idx := range indices {
		term := scalePoint(shares[idx].sigma, coeffs[i])
		if i == 0 {
			sigma = term
		} else {
			sigma = addG1(sigma, term)
		}
	}
	return &Signature{sigma: sigma}
}
