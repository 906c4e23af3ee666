package ecash

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestDealerKeygenSharesReconstructAggregate(t *testing.T) {
	apk, pks, sks := DealerKeygen(5, 7)

	if len(pks) != 7 || len(sks) != 7 {
		t.Fatalf("expected 7 shares, got %d public and %d secret", len(pks), len(sks))
	}

	indices := []uint64{1, 2, 3, 4, 5, 6, 7}
	coeffs := lagrangeMultipliers(indices)

	for j := 0; j < 4; j++ {
		var recon bls12381.G1Affine
		for i, coeff := range coeffs {
			term := scalePoint(pks[i].g1[j], coeff)
			if i == 0 {
				recon = term
			} else {
				recon = addG1(recon, term)
			}
		}
		if !recon.Equal(&apk.g1[j]) {
			t.Fatalf("reconstructing coordinate %d from all shares did not match the aggregate key", j)
		}
	}
}

func TestDealerKeygenSecretSharesMatchPublicShares(t *testing.T) {
	_, pks, sks := DealerKeygen(3, 4)

	for i := range sks {
		for j := 0; j < 4; j++ {
			expected := scalePoint(EcashG1(), sks[i].s[j])
			if !expected.Equal(&pks[i].g1[j]) {
				t.Fatalf("participant %d: secret share does not match public share at coordinate %d", i, j)
			}
		}
	}
}
