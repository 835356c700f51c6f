package generator

import "malaysia-energy-synth/internal/model"

// BuildingMetadata is one summary row per input building: static attributes
// plus derived totals. Independent of the timestamp loop.
type BuildingMetadata struct {
	ID       string `json:"building_id"`
	SourceID string `json:"source_id,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ZoneName  string  `json:"zone_name,omitempty"`

	BuildingType     model.BuildingType     `json:"building_type"`
	SurfaceAreaM2    float64                `json:"surface_area_m2"`
	Floors           int                    `json:"floors"`
	ConstructionYear int                    `json:"construction_year,omitempty"`
	Efficiency       model.EfficiencyRating `json:"efficiency_rating"`
	HasSolar         bool                   `json:"has_solar"`
	HasAC            bool                   `json:"has_ac"`
	Occupancy        model.OccupancyLevel   `json:"occupancy"`

	BaseConsumptionKWh float64 `json:"base_consumption_kwh"`
	PeakConsumptionKWh float64 `json:"peak_consumption_kwh"`

	TotalFloorSurfaceM2 float64 `json:"total_floor_surface_m2"`
	EstimatedMonthlyKWh float64 `json:"estimated_monthly_kwh"`
}

// Metadata produces the building metadata table, one row per building in
// input order.
func Metadata(buildings []*model.Building) []BuildingMetadata {
	out := make([]BuildingMetadata, len(buildings))
	for i, b := range buildings {
		out[i] = BuildingMetadata{
			ID:                  b.ID,
			SourceID:            b.SourceID,
			Latitude:            b.Latitude,
			Longitude:           b.Longitude,
			ZoneName:            b.ZoneName,
			BuildingType:        b.Type,
			SurfaceAreaM2:       b.SurfaceAreaM2,
			Floors:              b.Floors,
			ConstructionYear:    b.ConstructionYear,
			Efficiency:          b.Efficiency,
			HasSolar:            b.HasSolar,
			HasAC:               b.HasAC,
			Occupancy:           b.Occupancy,
			BaseConsumptionKWh:  b.BaseConsumptionKWh,
			PeakConsumptionKWh:  b.PeakConsumptionKWh,
			TotalFloorSurfaceM2: b.SurfaceAreaM2 * float64(b.Floors),
			// Hourly base extrapolated over a 30-day month.
			EstimatedMonthlyKWh: b.BaseConsumptionKWh * 24 * 30,
		}
	}
	return out
}
