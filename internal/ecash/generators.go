package ecash

import (
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Domain-separation tags for the seven process-wide generators. These are
// fixed literals shared by every mint and client in a federation; changing
// one changes every commitment and proof computed against it.
const (
	tagPedersenG = "FEDIMINT_GENERATOR_PEDERSEN_G"
	tagPedersenH = "FEDIMINT_GENERATOR_PEDERSEN_H"
	tagEcashG1   = "FEDIMINT_GENERATOR_ECASH_G1"
	tagEcashG2   = "FEDIMINT_GENERATOR_ECASH_G2"
	tagEcashH1   = "FEDIMINT_GENERATOR_ECASH_H1"
	tagEcashH2   = "FEDIMINT_GENERATOR_ECASH_H2"
	tagEcashH3   = "FEDIMINT_GENERATOR_ECASH_H3"
)

var (
	pedersenGOnce sync.Once
	pedersenHOnce sync.Once
	ecashG1Once   sync.Once
	ecashG2Once   sync.Once
	ecashH1Once   sync.Once
	ecashH2Once   sync.Once
	ecashH3Once   sync.Once

	pedersenGVal bls12381.G1Affine
	pedersenHVal bls12381.G1Affine
	ecashG1Val   bls12381.G1Affine
	ecashH1Val   bls12381.G1Affine
	ecashH2Val   bls12381.G1Affine
	ecashH3Val   bls12381.G1Affine
	ecashG2Val   bls12381.G2Affine
)

// PedersenG returns the Pedersen commitment's message generator. The value
// is computed once and memoized for the lifetime of the process.
func PedersenG() bls12381.G1Affine {
	pedersenGOnce.Do(func() { pedersenGVal = hashToG1([]byte(tagPedersenG)) })
	return pedersenGVal
}

// PedersenH returns the Pedersen commitment's blinding generator.
func PedersenH() bls12381.G1Affine {
	pedersenHOnce.Do(func() { pedersenHVal = hashToG1([]byte(tagPedersenH)) })
	return pedersenHVal
}

// EcashG1 returns the G1 generator used for re-randomization blinding and
// as the fourth coordinate base of the three-message commitment.
func EcashG1() bls12381.G1Affine {
	ecashG1Once.Do(func() { ecashG1Val = hashToG1([]byte(tagEcashG1)) })
	return ecashG1Val
}

// EcashG2 returns the G2 generator the Pointcheval-Sanders signature is
// verified against.
func EcashG2() bls12381.G2Affine {
	ecashG2Once.Do(func() { ecashG2Val = hashToG2([]byte(tagEcashG2)) })
	return ecashG2Val
}

// EcashH1 returns the generator bound to the amount message m_1.
func EcashH1() bls12381.G1Affine {
	ecashH1Once.Do(func() { ecashH1Val = hashToG1([]byte(tagEcashH1)) })
	return ecashH1Val
}

// EcashH2 returns the generator bound to the blinding message m_2.
func EcashH2() bls12381.G1Affine {
	ecashH2Once.Do(func() { ecashH2Val = hashToG1([]byte(tagEcashH2)) })
	return ecashH2Val
}

// EcashH3 returns the generator bound to the authentication message m_3.
func EcashH3() bls12381.G1Affine {
	ecashH3Once.Do(func() { ecashH3Val = hashToG1([]byte(tagEcashH3)) })
	return ecashH3Val
}
