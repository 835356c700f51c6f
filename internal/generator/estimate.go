package generator

import (
	"time"

	"malaysia-energy-synth/internal/model"
)

// Throughput and row-size assumptions behind the coarse estimates.
const (
	estObservationsPerSecond = 15000.0
	estBytesPerObservation   = 150.0
)

// Estimate sizes a generation request before running it, so callers can
// reject or chunk oversized jobs up front.
type Estimate struct {
	Buildings         int     `json:"buildings_count"`
	Periods           int     `json:"time_periods"`
	TotalObservations int     `json:"total_observations"`
	EstimatedSeconds  float64 `json:"estimated_time_seconds"`
	EstimatedSizeMB   float64 `json:"estimated_size_mb"`
	Complexity        string  `json:"complexity"`
	Recommendation    string  `json:"recommendation"`
}

// EstimateRun computes the expected observation count and coarse time and
// size figures for the given parameters.
func EstimateRun(buildingCount int, start, end time.Time, freq model.Frequency) Estimate {
	periods := len(model.TimestampIndex(start, end, freq))
	total := buildingCount * periods

	est := Estimate{
		Buildings:         buildingCount,
		Periods:           periods,
		TotalObservations: total,
		EstimatedSeconds:  float64(total) / estObservationsPerSecond,
		EstimatedSizeMB:   float64(total) * estBytesPerObservation / (1024 * 1024),
	}

	switch {
	case total < 100_000:
		est.Complexity = "simple"
		est.Recommendation = "fast generation (under a minute)"
	case total < 1_000_000:
		est.Complexity = "moderate"
		est.Recommendation = "standard generation (1-5 minutes)"
	case total < 10_000_000:
		est.Complexity = "complex"
		est.Recommendation = "long generation (5-30 minutes)"
	default:
		est.Complexity = "very_complex"
		est.Recommendation = "very long generation (over 30 minutes); consider chunking"
	}
	return est
}
