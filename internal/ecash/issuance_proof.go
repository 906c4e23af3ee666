package ecash

import (
	"bytes"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const issuanceChallengeTag = "FEDIMINT_ECASH_CHALLENGE_ISSUANCE"

// issuanceHomomorphism is F(x, h) from the issuance sigma protocol: the
// eight-scalar witness x = (m1, m2, m3, rp, rm, r1, r2, r3) maps to the five
// public points (pc, c_m, c1, c2, c3).
func issuanceHomomorphism(x [8]fr.Element, h bls12381.G1Affine) [5]bls12381.G1Affine {
	m1, m2, m3, rp, rm, r1, r2, r3 := x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7]
	return [5]bls12381.G1Affine{
		computePC(m1, rp),
		computeCM(m1, m2, m3, rm),
		computeCK(m1, r1, h),
		computeCK(m2, r2, h),
		computeCK(m3, r3, h),
	}
}

// proveIssuance runs the issuance sigma protocol for witness x against
// statement y, returning the first-message commitment r and the response s.
func proveIssuance(y [5]bls12381.G1Affine, x [8]fr.Element, h bls12381.G1Affine) ([5]bls12381.G1Affine, [8]fr.Element) {
	var r [8]fr.Element
	for i := range r {
		r[i] = sampleScalar()
	}
	rProof := issuanceHomomorphism(r, h)

	c := challengeIssuance(y, rProof)

	var s [8]fr.Element
	for i := range s {
		var cx fr.Element
		cx.Mul(&c, &x[i])
		s[i].Add(&r[i], &cx)
	}
	return rProof, s
}

// verifyIssuance checks that s is a valid response to statement (y, r)
// under the per-run generator derived from y[1].
func verifyIssuance(y, r [5]bls12381.G1Affine, s [8]fr.Element) bool {
	h := hashG1ToG1(y[1])
	c := challengeIssuance(y, r)

	lhs := issuanceHomomorphism(s, h)
	for i := 0; i < 5; i++ {
		rhs := scaleAndAddPoint(y[i], c, r[i])
		if !lhs[i].Equal(&rhs) {
			return false
		}
	}
	return true
}

// challengeIssuance computes the Fiat-Shamir challenge over the fixed
// transcript tag || y[0..5) || r[0..5), each point canonically compressed.
func challengeIssuance(y, r [5]bls12381.G1Affine) fr.Element {
	var buf bytes.Buffer
	buf.WriteString(issuanceChallengeTag)
	for _, p := range y {
		b := p.Bytes()
		buf.Write(b[:])
	}
	for _, p := range r {
		b := p.Bytes()
		buf.Write(b[:])
	}
	return hashToScalar(buf.Bytes())
}
