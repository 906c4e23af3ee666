package ecash

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/chacha20"
)

// Domain separation tags fed to the hash-to-curve oracle, distinguishing G1
// from G2 samples drawn from the same digest space.
const (
	g1HashToCurveDST = "FEDIMINT-ECASH-BLS12381G1_XMD:SHA-256_SSWU_RO_"
	g2HashToCurveDST = "FEDIMINT-ECASH-BLS12381G2_XMD:SHA-256_SSWU_RO_"
)

// hashToScalar samples a uniform field element from a deterministic stream
// keyed by SHA-256(data).
func hashToScalar(data []byte) fr.Element {
	digest := sha256.Sum256(data)
	return mapToScalar(digest[:])
}

// mapToScalar samples a uniform field element from a deterministic stream
// keyed directly by a 32-byte digest, skipping the SHA-256 step.
func mapToScalar(digest []byte) fr.Element {
	stream := newKeyedStream(digest)
	wide := make([]byte, 64)
	stream.read(wide)

	n := new(big.Int).SetBytes(wide)
	n.Mod(n, fr.Modulus())

	var e fr.Element
	e.SetBigInt(n)
	return e
}

// hashToG1 maps SHA-256(data) to a G1 element via mapToG1. It uses the
// RFC 9380 hash-to-curve oracle, not a keyed stream like hashToScalar.
func hashToG1(data []byte) bls12381.G1Affine {
	digest := sha256.Sum256(data)
	return mapToG1(digest[:])
}

// mapToG1 maps a 32-byte digest to a G1 element with gnark-crypto's RFC 9380
// HashToG1 under g1HashToCurveDST.
func mapToG1(digest []byte) bls12381.G1Affine {
	p, err := bls12381.HashToG1(digest, []byte(g1HashToCurveDST))
	if err != nil {
		panic(fmt.Sprintf("ecash: hash-to-curve oracle failed: %v", err))
	}
	return p
}

// hashToG2 maps SHA-256(data) to a G2 element via mapToG2. It uses the
// RFC 9380 hash-to-curve oracle, not a keyed stream like hashToScalar.
func hashToG2(data []byte) bls12381.G2Affine {
	digest := sha256.Sum256(data)
	return mapToG2(digest[:])
}

// mapToG2 maps a 32-byte digest to a G2 element with gnark-crypto's RFC 9380
// HashToG2 under g2HashToCurveDST.
func mapToG2(digest []byte) bls12381.G2Affine {
	p, err := bls12381.HashToG2(digest, []byte(g2HashToCurveDST))
	if err != nil {
		panic(fmt.Sprintf("ecash: hash-to-curve oracle failed: %v", err))
	}
	return p
}

// hashG1ToG1 maps a G1 point to a fresh point with no known discrete-log
// relation to it, via its canonical compressed encoding.
func hashG1ToG1(p bls12381.G1Affine) bls12381.G1Affine {
	b := p.Bytes()
	return hashToG1(b[:])
}

// keyedStream is a deterministic byte stream derived by keying ChaCha20 with
// a 32-byte digest and a zero nonce, used to expand a hash output into
// uniform scalar field material.
type keyedStream struct {
	cipher *chacha20.Cipher
}

func newKeyedStream(seed []byte) keyedStream {
	var key [32]byte
	copy(key[:], seed)
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic(fmt.Sprintf("ecash: keystream init failed: %v", err))
	}
	return keyedStream{cipher: c}
}

func (s keyedStream) read(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
	s.cipher.XORKeyStream(dst, dst)
}
