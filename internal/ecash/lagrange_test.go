package ecash

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
)

// TestLagrangeIdentity checks that the Lagrange coefficients at 0 for a set
// of signer indices sum to 1, the threshold-signature analogue of the
// polynomial-reconstruction identity.
func TestLagrangeIdentity(t *testing.T) {
	indices := []uint64{1, 2, 3, 4, 5, 6, 7}
	coeffs := lagrangeMultipliers(indices)

	var sum fr.Element
	for _, c := range coeffs {
		sum.Add(&sum, &c)
	}

	want := one()
	assert.True(t, sum.Equal(&want), "lagrange coefficients at a full index set must sum to 1")
}

func TestLagrangeIdentitySubset(t *testing.T) {
	indices := []uint64{2, 4, 5, 6, 7}
	coeffs := lagrangeMultipliers(indices)

	var sum fr.Element
	for _, c := range coeffs {
		sum.Add(&sum, &c)
	}

	want := one()
	assert.True(t, sum.Equal(&want), "lagrange coefficients must sum to 1 regardless of which subset is used")
}

func TestAggregateSignatureSharesRejectsEmptyMap(t *testing.T) {
	assert.Panics(t, func() {
		AggregateSignatureShares(map[uint64]*SignatureShare{})
	})
}

func TestAggregateSignatureSharesRejectsIndexZero(t *testing.T) {
	assert.Panics(t, func() {
		AggregateSignatureShares(map[uint64]*SignatureShare{
			0: {sigma: EcashG1()},
		})
	})
}
