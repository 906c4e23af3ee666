package ecash

import (
	"crypto/sha256"
	"testing"
)

func TestHashToScalarIsDeterministic(t *testing.T) {
	a := hashToScalar([]byte("federation test vector"))
	b := hashToScalar([]byte("federation test vector"))
	if !a.Equal(&b) {
		t.Fatal("hashToScalar is not deterministic for identical input")
	}

	c := hashToScalar([]byte("a different vector"))
	if a.Equal(&c) {
		t.Fatal("hashToScalar collided on distinct input")
	}
}

func TestHashToG1IsDeterministic(t *testing.T) {
	a := hashToG1([]byte("federation test vector"))
	b := hashToG1([]byte("federation test vector"))
	if !a.Equal(&b) {
		t.Fatal("hashToG1 is not deterministic for identical input")
	}
}

func TestHashG1ToG1MovesThePoint(t *testing.T) {
	p := EcashG1()
	mapped := hashG1ToG1(p)
	if mapped.Equal(&p) {
		t.Fatal("hashG1ToG1 must not be the identity map")
	}
}

func TestMapToScalarSkipsHashing(t *testing.T) {
	digest := [32]byte{1, 2, 3, 4, 5}
	a := mapToScalar(digest[:])
	b := mapToScalar(digest[:])
	if !a.Equal(&b) {
		t.Fatal("mapToScalar is not deterministic for identical digest")
	}

	data := []byte("federation test vector")
	hashed := sha256.Sum256(data)
	viaMap := mapToScalar(hashed[:])
	viaHash := hashToScalar(data)
	if !viaMap.Equal(&viaHash) {
		t.Fatal("mapToScalar(SHA-256(data)) must equal hashToScalar(data)")
	}
}
