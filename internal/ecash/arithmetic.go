package ecash

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// sampleScalar draws a uniform field element from the system CSPRNG. A
// failed draw is a contract violation: randomness is never "recovered
// from", so this halts the process rather than returning a zero value.
func sampleScalar() fr.Element {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		panic(fmt.Sprintf("ecash: csprng draw failed: %v", err))
	}
	return e
}

// SampleScalar draws a uniform scalar for callers outside this package that
// need to supply client-chosen randomness, such as an issuance request's
// blinding serial or a spend's re-randomization factor.
func SampleScalar() fr.Element {
	return sampleScalar()
}

// one returns the scalar field's multiplicative identity.
func one() fr.Element {
	var e fr.Element
	e.SetOne()
	return e
}

func scalarBigInt(s fr.Element) *big.Int {
	var b big.Int
	s.BigInt(&b)
	return &b
}

// scalePoint returns s*p.
func scalePoint(p bls12381.G1Affine, s fr.Element) bls12381.G1Affine {
	var j bls12381.G1Jac
	j.FromAffine(&p)
	j.ScalarMultiplication(&j, scalarBigInt(s))
	var res bls12381.G1Affine
	res.FromJacobian(&j)
	return res
}

// addG1 returns a+b.
func addG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var ja, jb bls12381.G1Jac
	ja.FromAffine(&a)
	jb.FromAffine(&b)
	ja.AddAssign(&jb)
	var res bls12381.G1Affine
	res.FromJacobian(&ja)
	return res
}

// subG1 returns a-b.
func subG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var negB bls12381.G1Affine
	negB.Neg(&b)
	return addG1(a, negB)
}

// scaleAndAddPoint returns s*p + q.
func scaleAndAddPoint(p bls12381.G1Affine, s fr.Element, q bls12381.G1Affine) bls12381.G1Affine {
	return addG1(scalePoint(p, s), q)
}

// scalePointG2 returns s*p.
func scalePointG2(p bls12381.G2Affine, s fr.Element) bls12381.G2Affine {
	var j bls12381.G2Jac
	j.FromAffine(&p)
	j.ScalarMultiplication(&j, scalarBigInt(s))
	var res bls12381.G2Affine
	res.FromJacobian(&j)
	return res
}

// addG2 returns a+b.
func addG2(a, b bls12381.G2Affine) bls12381.G2Affine {
	var ja, jb bls12381.G2Jac
	ja.FromAffine(&a)
	jb.FromAffine(&b)
	ja.AddAssign(&jb)
	var res bls12381.G2Affine
	res.FromJacobian(&ja)
	return res
}

// scaleAndAddPointG2 returns s*p + q.
func scaleAndAddPointG2(p bls12381.G2Affine, s fr.Element, q bls12381.G2Affine) bls12381.G2Affine {
	return addG2(scalePointG2(p, s), q)
}
