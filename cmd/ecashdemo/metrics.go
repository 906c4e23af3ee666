// metrics.go - timing and counters for the ecash demonstration binary
package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector accumulates counters, gauges, and histograms for the
// crypto operations this demo runs, keyed by name plus an optional label set.
type MetricsCollector struct {
	mu         sync.RWMutex
	counters   map[string]*int64
	gauges     map[string]*float64
	histograms map[string][]float64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters:   make(map[string]*int64),
		gauges:     make(map[string]*float64),
		histograms: make(map[string][]float64),
	}
}

// IncrementCounter increments a counter metric
func (mc *MetricsCollector) IncrementCounter(name string, labels map[string]string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := mc.makeKey(name, labels)
	if counter, exists := mc.counters[key]; exists {
		atomic.AddInt64(counter, 1)
	} else {
		var value int64 = 1
		mc.counters[key] = &value
	}
}

// SetGauge sets a gauge metric value
func (mc *MetricsCollector) SetGauge(name string, value float64, labels map[string]string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := mc.makeKey(name, labels)
	if gauge, exists := mc.gauges[key]; exists {
		*gauge = value
	} else {
		mc.gauges[key] = &value
	}
}

// RecordHistogram records a value in a histogram
func (mc *MetricsCollector) RecordHistogram(name string, value float64, labels map[string]string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := mc.makeKey(name, labels)
	if histogram, exists := mc.histograms[key]; exists {
		mc.histograms[key] = append(histogram, value)
	} else {
		mc.histograms[key] = []float64{value}
	}

	if len(mc.histograms[key]) > 1000 {
		mc.histograms[key] = mc.histograms[key][len(mc.histograms[key])-1000:]
	}
}

// GetMetricsSummary returns a summary of all metrics
func (mc *MetricsCollector) GetMetricsSummary() map[string]interface{} {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	summary := make(map[string]interface{})

	counters := make(map[string]int64)
	for key, counter := range mc.counters {
		counters[key] = atomic.LoadInt64(counter)
	}
	summary["counters"] = counters

	gauges := make(map[string]float64)
	for key, gauge := range mc.gauges {
		gauges[key] = *gauge
	}
	summary["gauges"] = gauges

	histograms := make(map[string]map[string]float64)
	for key, values := range mc.histograms {
		if len(values) > 0 {
			histogram := make(map[string]float64)
			histogram["count"] = float64(len(values))
			histogram["min"] = values[0]
			histogram["max"] = values[0]
			histogram["sum"] = 0

			for _, value := range values {
				if value < histogram["min"] {
					histogram["min"] = value
				}
				if value > histogram["max"] {
					histogram["max"] = value
				}
				histogram["sum"] += value
			}

			histogram["avg"] = histogram["sum"] / histogram["count"]
			histograms[key] = histogram
		}
	}
	summary["histograms"] = histograms

	return summary
}

// makeKey creates a unique key for a metric name and labels
func (mc *MetricsCollector) makeKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}

	key := name
	for k, v := range labels {
		key += fmt.Sprintf("_%s_%s", k, v)
	}
	return key
}

// Predefined metric names for the issuance/spend lifecycle.
const (
	MetricIssuanceProofTime  = "issuance_proof_time"
	MetricShareSignTime      = "share_sign_time"
	MetricAggregationTime    = "aggregation_time"
	MetricSpendProofTime     = "spend_proof_time"
	MetricActiveParticipants = "active_participants"
	MetricSharesCollected    = "shares_collected"
	MetricErrorCount         = "error_count"
)

// Convenience methods for recording crypto-operation timings.
func (mc *MetricsCollector) RecordIssuanceProof(duration time.Duration) {
	mc.RecordHistogram(MetricIssuanceProofTime, duration.Seconds(), nil)
}

func (mc *MetricsCollector) RecordShareSign(participantIndex uint64, duration time.Duration) {
	mc.RecordHistogram(MetricShareSignTime, duration.Seconds(),
		map[string]string{"participant": fmt.Sprintf("%d", participantIndex)})
	mc.IncrementCounter(MetricSharesCollected, nil)
}

func (mc *MetricsCollector) RecordAggregation(duration time.Duration) {
	mc.RecordHistogram(MetricAggregationTime, duration.Seconds(), nil)
}

func (mc *MetricsCollector) RecordSpendProof(duration time.Duration) {
	mc.RecordHistogram(MetricSpendProofTime, duration.Seconds(), nil)
}

func (mc *MetricsCollector) RecordError(errorType string) {
	mc.IncrementCounter(MetricErrorCount, map[string]string{"type": errorType})
}
