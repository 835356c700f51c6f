package models

import "malaysia-energy-synth/internal/model"

// GenerateRequest is the body of POST /api/v1/generate.
type GenerateRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Frequency string `json:"frequency"`

	Buildings []model.BuildingRecord `json:"buildings" binding:"required"`

	Options GenerateOptions `json:"options"`
}

// GenerateOptions tunes a generation run without changing its inputs.
type GenerateOptions struct {
	Seed                int64 `json:"seed"`
	Workers             int   `json:"workers"`
	IncludeObservations bool  `json:"include_observations"`
}

// EstimateRequest is the body of POST /api/v1/estimate.
type EstimateRequest struct {
	BuildingCount int    `json:"building_count" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Frequency     string `json:"frequency"`
}
