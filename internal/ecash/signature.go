package ecash

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// AggregatePublicKey is the federation-wide Pointcheval-Sanders public key:
// coordinate 0 binds the constant term, coordinates 1..3 bind m_1, m_2, m_3.
type AggregatePublicKey struct {
	g1 [4]bls12381.G1Affine
	g2 [4]bls12381.G2Affine
}

// PublicKeyShare is one signer's evaluation of the four key polynomials.
type PublicKeyShare struct {
	g1 [4]bls12381.G1Affine
	g2 [4]bls12381.G2Affine
}

// SecretKeyShare is one signer's four scalar shares.
type SecretKeyShare struct {
	s [4]fr.Element
}

// SignatureShare is one signer's blinded Pointcheval-Sanders signature.
type SignatureShare struct {
	sigma bls12381.G1Affine
}

// Signature is a Lagrange-aggregated blinded signature, valid under the
// federation's AggregatePublicKey once unblinded.
type Signature struct {
	sigma bls12381.G1Affine
}

// signBlindedMessage computes sk[0]*h + sk[1]*c1 + sk[2]*c2 + sk[3]*c3, the
// blind signature a share holder issues over an Issuance statement.
func signBlindedMessage(sk *SecretKeyShare, h, c1, c2, c3 bls12381.G1Affine) bls12381.G1Affine {
	sigma := scalePoint(h, sk.s[0])
	sigma = addG1(sigma, scalePoint(c1, sk.s[1]))
	sigma = addG1(sigma, scalePoint(c2, sk.s[2]))
	sigma = addG1(sigma, scalePoint(c3, sk.s[3]))
	return sigma
}

// blindingFactor computes r1*g1[1] + r2*g1[2] + r3*g1[3], the contribution a
// blinded signature carries from the witness randomness r1, r2, r3.
func blindingFactor(g1 [4]bls12381.G1Affine, r1, r2, r3 fr.Element) bls12381.G1Affine {
	bf := scalePoint(g1[1], r1)
	bf = addG1(bf, scalePoint(g1[2], r2))
	bf = addG1(bf, scalePoint(g1[3], r3))
	return bf
}

// unblindSignature removes the blinding factor contributed by r1, r2, r3
// from a blinded signature, recovering a signature on the underlying
// message commitments.
func unblindSignature(g1 [4]bls12381.G1Affine, sigma bls12381.G1Affine, r1, r2, r3 fr.Element) bls12381.G1Affine {
	return subG1(sigma, blindingFactor(g1, r1, r2, r3))
}

// computeMessage computes the Pointcheval-Sanders message point
// g2[0] + m1*g2[1] + m2*g2[2] + m3*g2[3].
func computeMessage(g2 [4]bls12381.G2Affine, m1, m2, m3 fr.Element) bls12381.G2Affine {
	msg := scalePointG2(g2[1], m1)
	msg = addG2(msg, scalePointG2(g2[2], m2))
	msg = addG2(msg, scalePointG2(g2[3], m3))
	msg = addG2(msg, g2[0])
	return msg
}

// verifyPairing checks e(h, message) == e(sigma, EcashG2()).
func verifyPairing(message bls12381.G2Affine, h, sigma bls12381.G1Affine) bool {
	lhs, err := bls12381.Pair([]bls12381.G1Affine{h}, []bls12381.G2Affine{message})
	if err != nil {
		panic(fmt.Sprintf("ecash: pairing computation failed: %v", err))
	}
	ecashG2 := EcashG2()
	rhs, err := bls12381.Pair([]bls12381.G1Affine{sigma}, []bls12381.G2Affine{ecashG2})
	if err != nil {
		panic(fmt.Sprintf("ecash: pairing computation failed: %v", err))
	}
	return lhs.Equal(&rhs)
}
