package ecash

import (
	"bytes"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const spendChallengeTag = "FEDIMINT_ECASH_CHALLENGE_SPEND"

// computeK computes m1*pk[1] + m2*pk[2] over the aggregate key's G2
// coordinates.
func computeK(m1, m2 fr.Element, pk [4]bls12381.G2Affine) bls12381.G2Affine {
	return addG2(scalePointG2(pk[1], m1), scalePointG2(pk[2], m2))
}

// spendHomomorphism is G(x, pk) from the spend sigma protocol: the
// three-scalar witness x = (m1, m2, rp) maps to the pair (p, k) in G1xG2.
func spendHomomorphism(x [3]fr.Element, pk [4]bls12381.G2Affine) (bls12381.G1Affine, bls12381.G2Affine) {
	m1, m2, rp := x[0], x[1], x[2]
	p := computePC(m1, rp)
	k := computeK(m1, m2, pk)
	return p, k
}

// proveSpend runs the spend sigma protocol for witness x against statement
// y = (yp, yk), returning the first-message commitment and the response.
func proveSpend(yp bls12381.G1Affine, yk bls12381.G2Affine, x [3]fr.Element, pk [4]bls12381.G2Affine) (bls12381.G1Affine, bls12381.G2Affine, [3]fr.Element) {
	var r [3]fr.Element
	for i := range r {
		r[i] = sampleScalar()
	}
	rp, rk := spendHomomorphism(r, pk)

	c := challengeSpend(yp, yk, rp, rk)

	var s [3]fr.Element
	for i := range s {
		var cx fr.Element
		cx.Mul(&c, &x[i])
		s[i].Add(&r[i], &cx)
	}
	return rp, rk, s
}

// verifySpendProof checks that s is a valid response to statement
// (yp, yk), (rp, rk) under the given verifier key.
func verifySpendProof(yp bls12381.G1Affine, yk bls12381.G2Affine, rp bls12381.G1Affine, rk bls12381.G2Affine, s [3]fr.Element, pk [4]bls12381.G2Affine) bool {
	c := challengeSpend(yp, yk, rp, rk)

	lp, lk := spendHomomorphism(s, pk)
	expP := scaleAndAddPoint(yp, c, rp)
	expK := scaleAndAddPointG2(yk, c, rk)
	return lp.Equal(&expP) && lk.Equal(&expK)
}

// challengeSpend computes the Fiat-Shamir challenge over the fixed
// transcript tag || yp || yk || rp || rk, each point canonically
// compressed.
func challengeSpend(yp bls12381.G1Affine, yk bls12381.G2Affine, rp bls12381.G1Affine, rk bls12381.G2Affine) fr.Element {
	var buf bytes.Buffer
	buf.WriteString(spendChallengeTag)
	bp := yp.Bytes()
	buf.Write(bp[:])
	bk := yk.Bytes()
	buf.Write(bk[:])
	brp := rp.Bytes()
	buf.Write(brp[:])
	brk := rk.Bytes()
	buf.Write(brk[:])
	return hashToScalar(buf.Bytes())
}
