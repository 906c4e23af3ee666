// Package ecash implements the cryptographic core of an anonymous,
// threshold-issued electronic cash protocol over BLS12-381.
//
// Overview
//
// A client assembles an IssuanceRequest from an amount, an authentication
// tag, and its own blinding randomness, turns it into an Issuance carrying a
// non-interactive zero-knowledge proof, and sends that to each mint in a
// federation. Each mint verifies the proof and returns a SignatureShare
// computed under its own Pointcheval-Sanders key share. The client verifies
// each share, aggregates a threshold-sized subset via Lagrange interpolation
// into a Signature, and folds it into a SpendRequest whose re-randomized form
// (Spend) can later be verified by anyone holding the federation's aggregate
// public key without linking it back to the issuance transcript.
//
// Security model
//
// Unforgeability rests on the Pointcheval-Sanders signature scheme over
// BLS12-381; unlinkability rests on the blinding/re-randomization performed
// at finalization. Dealer-based key generation (DealerKeygen) is a test
// fixture only — production deployments distribute key shares through the
// federation's own key-generation protocol, which is out of scope here.
//
// Failure semantics
//
// Functions that check a cryptographic claim (a proof, a pairing equation)
// return a bool and never panic on adversarial input. Functions that detect
// a violated calling contract (an empty share set, a duplicate or zero
// signer index, a CSPRNG failure) panic, since these indicate a programming
// error rather than an attack that should be tolerated.
package ecash
