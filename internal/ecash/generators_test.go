package ecash

import "testing"

func TestGeneratorsAreMemoized(t *testing.T) {
	g1 := PedersenG()
	g2 := PedersenG()
	if !g1.Equal(&g2) {
		t.Fatal("PedersenG returned different points across calls")
	}
}

func TestGeneratorsAreDistinct(t *testing.T) {
	g := PedersenG()
	h := PedersenH()
	if g.Equal(&h) {
		t.Fatal("PedersenG and PedersenH must not coincide")
	}

	e1 := EcashG1()
	h1 := EcashH1()
	h2 := EcashH2()
	h3 := EcashH3()
	if e1.Equal(&h1) || e1.Equal(&h2) || e1.Equal(&h3) || h1.Equal(&h2) || h1.Equal(&h3) || h2.Equal(&h3) {
		t.Fatal("ecash G1 generators must be pairwise distinct")
	}
}

func TestEcashG2IsNotIdentity(t *testing.T) {
	g2 := EcashG2()
	if g2.IsInfinity() {
		t.Fatal("EcashG2 must not be the point at infinity")
	}
}
