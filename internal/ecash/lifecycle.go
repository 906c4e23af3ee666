package ecash

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// IssuanceRequest holds a client's secrets for a new coin: the amount and
// authentication messages, the client-chosen blinding serial r_p, and the
// internally-sampled blinding randomness for the three-message commitment
// and per-message commitments.
type IssuanceRequest struct {
	m1, m2, m3 fr.Element
	rp, rm     fr.Element
	r1, r2, r3 fr.Element
}

// NewIssuanceRequest builds a request for the given amount and
// authentication tag, using the caller-supplied blinding serial rp. auth
// must be a 32-byte digest (typically SHA-256 of an authentication
// secret); m_2 and the internal commitment randomness are sampled
// uniformly.
func NewIssuanceRequest(amount uint64, auth [32]byte, rp fr.Element) *IssuanceRequest {
	var m1 fr.Element
	m1.SetUint64(amount)

	return &IssuanceRequest{
		m1: m1,
		m2: sampleScalar(),
		m3: mapToScalar(auth[:]),
		rp: rp,
		rm: sampleScalar(),
		r1: sampleScalar(),
		r2: sampleScalar(),
		r3: sampleScalar(),
	}
}

// computeH derives this request's per-run generator from its three-message
// commitment.
func (req *IssuanceRequest) computeH() bls12381.G1Affine {
	cm := computeCM(req.m1, req.m2, req.m3, req.rm)
	return hashG1ToG1(cm)
}

func (req *IssuanceRequest) witness() [8]fr.Element {
	return [8]fr.Element{req.m1, req.m2, req.m3, req.rp, req.rm, req.r1, req.r2, req.r3}
}

// PrepareIssuance computes the public statement and issuance NIZK proof for
// this request, ready to be sent to a mint.
func (req *IssuanceRequest) PrepareIssuance() *Issuance {
	h := req.computeH()
	x := req.witness()
	y := issuanceHomomorphism(x, h)
	r, s := proveIssuance(y, x, h)
	return &Issuance{y: y, r: r, s: s}
}

func (req *IssuanceRequest) verifySignature(g2 [4]bls12381.G2Affine, sigma bls12381.G1Affine) bool {
	message := computeMessage(g2, req.m1, req.m2, req.m3)
	return verifyPairing(message, req.computeH(), sigma)
}

// VerifyBlindSignatureShare checks a single signer's blinded signature
// share against that signer's public key share.
func (req *IssuanceRequest) VerifyBlindSignatureShare(pk *PublicKeyShare, share *SignatureShare) bool {
	unblinded := unblindSignature(pk.g1, share.sigma, req.r1, req.r2, req.r3)
	return req.verifySignature(pk.g2, unblinded)
}

// VerifyBlindSignature checks an aggregated signature against the
// federation's aggregate public key.
func (req *IssuanceRequest) VerifyBlindSignature(pk *AggregatePublicKey, sig *Signature) bool {
	unblinded := unblindSignature(pk.g1, sig.sigma, req.r1, req.r2, req.r3)
	return req.verifySignature(pk.g2, unblinded)
}

// FinalizeIssuance unblinds the aggregate signature and re-randomizes it
// into a SpendRequest whose transcript is unlinkable to this issuance. The
// caller is expected to have already verified sig via VerifyBlindSignature;
// finalization re-checks that invariant and panics if it does not hold,
// since failing it here would mean signing a coin that can never be spent.
func (req *IssuanceRequest) FinalizeIssuance(pk *AggregatePublicKey, sig *Signature) *SpendRequest {
	unblinded := unblindSignature(pk.g1, sig.sigma, req.r1, req.r2, req.r3)
	if !req.verifySignature(pk.g2, unblinded) {
		panic("ecash: finalize_issuance: aggregate signature does not verify")
	}

	r := sampleScalar()
	h := scalePoint(req.computeH(), r)
	sigma := scalePoint(unblinded, r)
	return &SpendRequest{m2: req.m2, h: h, sigma: sigma}
}

// Issuance is the public statement and NIZK proof a client sends to each
// mint: five commitment points, the sigma protocol's first message, and its
// response.
type Issuance struct {
	y [5]bls12381.G1Affine
	r [5]bls12381.G1Affine
	s [8]fr.Element
}

// Verify checks the issuance NIZK is self-consistent.
func (iss *Issuance) Verify() bool {
	return verifyIssuance(iss.y, iss.r, iss.s)
}

// AmountCommitment exposes the Pedersen commitment to the issued amount.
func (iss *Issuance) AmountCommitment() bls12381.G1Affine {
	return iss.y[0]
}

// Sign computes this signer's blinded signature share over the issuance
// statement. It performs no verification of the issuance proof itself —
// callers must call Verify first.
func (iss *Issuance) Sign(sk *SecretKeyShare) *SignatureShare {
	h := hashG1ToG1(iss.y[1])
	sigma := signBlindedMessage(sk, h, iss.y[2], iss.y[3], iss.y[4])
	return &SignatureShare{sigma: sigma}
}

// SpendRequest is an unlinkable, re-randomized coin ready to be spent: the
// blinding message m_2, the re-randomized per-run generator h, and the
// re-randomized signature.
type SpendRequest struct {
	m2    fr.Element
	h     bls12381.G1Affine
	sigma bls12381.G1Affine
}

// Verify checks the embedded signature directly, without a spend NIZK,
// against the given amount and authentication tag.
func (sr *SpendRequest) Verify(pk *AggregatePublicKey, amount uint64, auth [32]byte) bool {
	var m1 fr.Element
	m1.SetUint64(amount)
	m3 := mapToScalar(auth[:])

	message := computeMessage(pk.g2, m1, sr.m2, m3)
	return verifyPairing(message, sr.h, sr.sigma)
}

// PrepareSpend attaches a spend NIZK proving knowledge of the amount,
// blinding message, and serial behind this coin, producing a self-contained
// Spend bundle a verifier can check without further context.
func (sr *SpendRequest) PrepareSpend(pk *AggregatePublicKey, amount uint64, rp fr.Element) *Spend {
	var m1 fr.Element
	m1.SetUint64(amount)

	x := [3]fr.Element{m1, sr.m2, rp}
	yp, yk := spendHomomorphism(x, pk.g2)
	rpPoint, rkPoint, s := proveSpend(yp, yk, x, pk.g2)

	return &Spend{
		yp: yp, yk: yk,
		rp: rpPoint, rk: rkPoint,
		s:     s,
		h:     sr.h,
		sigma: sr.sigma,
	}
}

// Spend is a complete, verifier-ready spend: the spend NIZK statement and
// proof, plus the re-randomized signature it accompanies.
type Spend struct {
	yp bls12381.G1Affine
	yk bls12381.G2Affine
	rp bls12381.G1Affine
	rk bls12381.G2Affine
	s  [3]fr.Element

	h     bls12381.G1Affine
	sigma bls12381.G1Affine
}

// Verify checks both the spend NIZK and the Pointcheval-Sanders pairing
// equation against the given authentication tag.
func (sp *Spend) Verify(pk *AggregatePublicKey, auth [32]byte) bool {
	if !verifySpendProof(sp.yp, sp.yk, sp.rp, sp.rk, sp.s, pk.g2) {
		return false
	}

	m3 := mapToScalar(auth[:])
	message := addG2(pk.g2[0], addG2(sp.yk, scalePointG2(pk.g2[3], m3)))
	return verifyPairing(message, sp.h, sp.sigma)
}

// AmountCommitment exposes the Pedersen commitment carried by this spend.
func (sp *Spend) AmountCommitment() bls12381.G1Affine {
	return sp.yp
}
