// main.go - end-to-end issuance-and-spend demonstration.
//
// This runs scenario 1 end to end: a federation of NumParticipants signers,
// keyed by a trusted dealer with a Shamir sharing over polynomials of degree
// Threshold-1 (see ecash.DealerKeygen), issues a blind signature over a
// committed amount and authentication tag, aggregates Threshold+1 signature
// shares into a single aggregate signature, finalizes the issuance into a
// spendable coin, and verifies a re-randomized spend against the aggregate
// public key.
//
// Usage:
//
//	go run .
package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"ecashcore/internal/ecash"
)

func main() {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := NewLogger(cfg.LogLevel)
	metrics := NewMetricsCollector()
	health := NewHealthChecker("ecashdemo-0.1.0")

	health.RegisterComponent("generators", func() error {
		_ = ecash.PedersenG()
		_ = ecash.PedersenH()
		_ = ecash.EcashG1()
		_ = ecash.EcashG2()
		_ = ecash.EcashH1()
		_ = ecash.EcashH2()
		_ = ecash.EcashH3()
		return nil
	})
	health.RegisterComponent("pairing_engine", func() error {
		return pairingSelfTest()
	})

	logger.Info("running startup sanity checks")
	status := health.CheckHealth()
	if status.OverallStatus != Healthy {
		for _, c := range status.Components {
			if c.Status != Healthy {
				logger.Error("component %s unhealthy: %s", c.Name, c.Message)
			}
		}
		os.Exit(1)
	}
	logger.Info("all components healthy (uptime %s)", status.Uptime)

	logger.Info("generating dealer keys: %d participants, threshold %d (polynomial degree %d)", cfg.NumParticipants, cfg.Threshold, cfg.Threshold-1)
	apk, pks, sks := ecash.DealerKeygen(cfg.Threshold, cfg.NumParticipants)
	metrics.SetGauge(MetricActiveParticipants, float64(cfg.NumParticipants), nil)

	auth := sha256.Sum256([]byte(cfg.AuthTag))
	logger.Info("preparing issuance request for amount=%d auth_tag=%q", cfg.Amount, cfg.AuthTag)

	req := ecash.NewIssuanceRequest(cfg.Amount, auth, ecash.SampleScalar())

	start := time.Now()
	iss := req.PrepareIssuance()
	metrics.RecordIssuanceProof(time.Since(start))

	if !iss.Verify() {
		logger.Fatal("issuance proof failed self-verification")
	}
	logger.Info("issuance proof generated and self-verified in %s", time.Since(start))
	logger.Audit("issuance_prepared", map[string]interface{}{
		"amount":   cfg.Amount,
		"auth_tag": cfg.AuthTag,
	})

	logger.Info("signing shares across %d participants with max concurrency %d", cfg.NumParticipants, cfg.MaxConcurrency)
	var sharesMu sync.Mutex
	shares := make(map[uint64]*ecash.SignatureShare, cfg.NumParticipants)

	sem := make(chan struct{}, cfg.MaxConcurrency)
	var wg sync.WaitGroup
	for i := 0; i < cfg.NumParticipants; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			idx := uint64(i + 1)
			t0 := time.Now()
			share := iss.Sign(sks[i])
			metrics.RecordShareSign(idx, time.Since(t0))

			if !req.VerifyBlindSignatureShare(pks[i], share) {
				logger.Error("signature share from participant %d failed verification", idx)
				metrics.RecordError("invalid_share")
				return
			}

			sharesMu.Lock()
			shares[idx] = share
			sharesMu.Unlock()
			logger.Debug("collected valid signature share from participant %d", idx)
		}(i)
	}
	wg.Wait()

	if len(shares) < cfg.Threshold+1 {
		logger.Fatal("collected %d shares, need at least %d", len(shares), cfg.Threshold+1)
	}

	// Aggregate exactly threshold+1 shares.
	subset := make(map[uint64]*ecash.SignatureShare, cfg.Threshold+1)
	taken := 0
	for idx, share := range shares {
		if taken >= cfg.Threshold+1 {
			break
		}
		subset[idx] = share
		taken++
	}

	t0 := time.Now()
	sig := ecash.AggregateSignatureShares(subset)
	metrics.RecordAggregation(time.Since(t0))

	if !req.VerifyBlindSignature(apk, sig) {
		logger.Fatal("aggregated blind signature failed verification under the aggregate public key")
	}
	logger.Info("aggregated %d shares into a valid blind signature in %s", len(subset), time.Since(t0))

	spendReq := req.FinalizeIssuance(apk, sig)
	if !spendReq.Verify(apk, cfg.Amount, auth) {
		logger.Fatal("finalized spend request failed verification")
	}
	logger.Info("issuance finalized into a spendable coin")

	t0 = time.Now()
	spend := spendReq.PrepareSpend(apk, cfg.Amount, ecash.SampleScalar())
	metrics.RecordSpendProof(time.Since(t0))

	if !spend.Verify(apk, auth) {
		logger.Fatal("spend proof failed verification")
	}
	logger.Info("spend proof generated and verified in %s", time.Since(t0))
	logger.Audit("spend_verified", map[string]interface{}{
		"amount":   cfg.Amount,
		"auth_tag": cfg.AuthTag,
	})

	summary := metrics.GetMetricsSummary()
	logger.Info("run complete: %+v", summary)
}

// pairingSelfTest checks e(g1, g2) is consistent with itself: it computes the
// pairing twice and compares the results. It does not check that the result
// is non-degenerate.
func pairingSelfTest() error {
	_, _, g1Gen, g2Gen := bls12381.Generators()

	lhs, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{g2Gen})
	if err != nil {
		return fmt.Errorf("pairing engine self-test failed: %w", err)
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{g2Gen})
	if err != nil {
		return fmt.Errorf("pairing engine self-test failed: %w", err)
	}
	if !lhs.Equal(&rhs) {
		return fmt.Errorf("pairing engine is non-deterministic")
	}
	return nil
}
