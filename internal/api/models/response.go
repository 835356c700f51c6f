package models

import (
	"time"

	"malaysia-energy-synth/internal/analysis"
	"malaysia-energy-synth/internal/data"
	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/model"
)

// GenerateResponse is the result of a generation run.
type GenerateResponse struct {
	Status   string           `json:"status"`
	Warnings []string         `json:"warnings,omitempty"`
	Summary  analysis.Summary `json:"summary"`
	Meta     GenerateMeta     `json:"meta"`

	// Populated only when include_observations was requested.
	Observations []model.Observation `json:"observations,omitempty"`
}

// GenerateMeta carries run bookkeeping alongside the summary.
type GenerateMeta struct {
	Buildings         int     `json:"buildings"`
	ExcludedBuildings int     `json:"excluded_buildings"`
	Periods           int     `json:"time_periods"`
	TotalObservations int     `json:"total_observations"`
	Frequency         string  `json:"frequency"`
	ElapsedSeconds    float64 `json:"elapsed_seconds"`
}

// EstimateResponse sizes a request without running it.
type EstimateResponse struct {
	Estimate generator.Estimate `json:"estimate"`
	Warnings []string           `json:"warnings,omitempty"`
}

// ZonesResponse lists the known Malaysian zones.
type ZonesResponse struct {
	Zones []data.Zone `json:"zones"`
}

// StatusResponse reports service uptime and lifetime totals.
type StatusResponse struct {
	Status            string    `json:"status"`
	StartedAt         time.Time `json:"started_at"`
	UptimeSeconds     float64   `json:"uptime_seconds"`
	GenerationRuns    int64     `json:"generation_runs"`
	TotalObservations int64     `json:"total_observations"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
