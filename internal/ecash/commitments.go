package ecash

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// computePC computes the Pedersen commitment m*g + r*h.
func computePC(m, r fr.Element) bls12381.G1Affine {
	return addG1(scalePoint(PedersenG(), m), scalePoint(PedersenH(), r))
}

// computeCM computes the three-message commitment
// m1*h1 + m2*h2 + m3*h3 + rm*ecashG1.
func computeCM(m1, m2, m3, rm fr.Element) bls12381.G1Affine {
	sum := scalePoint(EcashH1(), m1)
	sum = addG1(sum, scalePoint(EcashH2(), m2))
	sum = addG1(sum, scalePoint(EcashH3(), m3))
	sum = addG1(sum, scalePoint(EcashG1(), rm))
	return sum
}

// computeCK computes the per-message commitment m*h + r*ecashG1 against a
// per-run generator h.
func computeCK(m, r fr.Element, h bls12381.G1Affine) bls12381.G1Affine {
	return addG1(scalePoint(h, m), scalePoint(EcashG1(), r))
}
