package ecash

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// EncodeScalar returns the 32-byte little-endian canonical encoding of s.
func EncodeScalar(s fr.Element) [32]byte {
	be := s.Bytes()
	var le [32]byte
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return le
}

// DecodeScalar parses a 32-byte little-endian canonical scalar encoding.
func DecodeScalar(b [32]byte) fr.Element {
	var be [32]byte
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	var e fr.Element
	e.SetBytes(be[:])
	return e
}

// EncodeG1 returns the 48-byte compressed affine encoding of p.
func EncodeG1(p bls12381.G1Affine) [48]byte {
	return p.Bytes()
}

// DecodeG1 parses a 48-byte compressed affine G1 encoding.
func DecodeG1(b [48]byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	_, err := p.SetBytes(b[:])
	return p, err
}

// EncodeG2 returns the 96-byte compressed affine encoding of p.
func EncodeG2(p bls12381.G2Affine) [96]byte {
	return p.Bytes()
}

// DecodeG2 parses a 96-byte compressed affine G2 encoding.
func DecodeG2(b [96]byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	_, err := p.SetBytes(b[:])
	return p, err
}
