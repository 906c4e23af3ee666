package ecash

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// DealerKeygen is a test-only trusted-dealer fixture: it samples four
// independent random polynomials of degree threshold-1 over F and evaluates
// them to produce one AggregatePublicKey, n PublicKeyShares, and n
// SecretKeyShares indexed 1..n. Production federations distribute key
// shares through their own key-generation protocol rather than a dealer.
func DealerKeygen(threshold, n int) (*AggregatePublicKey, []*PublicKeyShare, []*SecretKeyShare) {
	var polys [4][]fr.Element
	for j := range polys {
		polys[j] = randomPolynomial(threshold)
	}

	var apk AggregatePublicKey
	zero := fr.Element{}
	for j := 0; j < 4; j++ {
		c0 := evaluatePolynomial(polys[j], zero)
		apk.g1[j] = scalePoint(EcashG1(), c0)
		apk.g2[j] = scalePointG2(EcashG2(), c0)
	}

	sks := make([]*SecretKeyShare, n)
	for i := 0; i < n; i++ {
		var idx fr.Element
		idx.SetUint64(uint64(i + 1))
		var sk SecretKeyShare
		for j := 0; j < 4; j++ {
			sk.s[j] = evaluatePolynomial(polys[j], idx)
		}
		sks[i] = &sk
	}

	pks := make([]*PublicKeyShare, n)
	for i, sk := range sks {
		var pk PublicKeyShare
		for j := 0; j < 4; j++ {
			pk.g1[j] = scalePoint(EcashG1(), sk.s[j])
			pk.g2[j] = scalePointG2(EcashG2(), sk.s[j])
		}
		pks[i] = &pk
	}

	return &apk, pks, sks
}

// randomPolynomial samples `degree` uniform coefficients, giving a
// polynomial of degree degree-1. This off-by-one is intentional: it matches
// the reference implementation this fixture was ported from, where
// dealer_keygen(threshold, n) is the degree-threshold-minus-one case.
func randomPolynomial(degree int) []fr.Element {
	coeffs := make([]fr.Element, degree)
	for i := range coeffs {
		coeffs[i] = sampleScalar()
	}
	return coeffs
}

// evaluatePolynomial evaluates coeffs (lowest-degree first) at x via
// Horner's method.
func evaluatePolynomial(coeffs []fr.Element, x fr.Element) fr.Element {
	acc := fr.Element{}
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &coeffs[i])
	}
	return acc
}
