// config.go - configuration for the ecash demonstration binary
package main

import "fmt"

// Config holds the parameters for a single end-to-end issuance-and-spend
// demonstration run.
type Config struct {
	// Protocol settings
	NumParticipants int    `json:"num_participants"`
	Threshold       int    `json:"threshold"`
	Amount          uint64 `json:"amount"`
	AuthTag         string `json:"auth_tag"`

	// Logging
	LogLevel string `json:"log_level"`

	// Performance
	MaxConcurrency int `json:"max_concurrency"`
}

// DefaultConfig returns the scenario-1 parameters from the protocol's
// testable end-to-end scenarios: amount 1000, a 7-participant federation
// with threshold 5 (DealerKeygen polynomials of degree 4).
func DefaultConfig() *Config {
	return &Config{
		NumParticipants: 7,
		Threshold:       5,
		Amount:          1000,
		AuthTag:         "authentication",
		LogLevel:        "info",
		MaxConcurrency:  4,
	}
}

// Validate checks the configuration is internally consistent before the
// demo runs any cryptographic operation against it.
func (c *Config) Validate() error {
	if c.NumParticipants <= 0 {
		return fmt.Errorf("num_participants must be positive")
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive")
	}
	if c.Threshold > c.NumParticipants {
		return fmt.Errorf("threshold (%d) cannot exceed num_participants (%d)", c.Threshold, c.NumParticipants)
	}
	if c.AuthTag == "" {
		return fmt.Errorf("auth_tag must not be empty")
	}
	if c.MaxConcurrency <= 0 {
		return fmt.Errorf("max_concurrency must be positive")
	}
	return nil
}
