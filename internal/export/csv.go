// Package export serializes the two output tables (building metadata and
// observations) to CSV, XLSX and JSON files.
package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/model"
)

var observationHeader = []string{
	"building_id",
	"timestamp",
	"consumption_kwh",
	"temperature_c",
	"humidity",
	"heat_index",
	"building_type",
	"zone_name",
	"hour",
	"day_of_week",
	"month",
	"is_weekend",
	"is_business_hour",
	"data_quality_score",
	"anomaly_flag",
}

var buildingHeader = []string{
	"building_id",
	"source_id",
	"latitude",
	"longitude",
	"zone_name",
	"building_type",
	"surface_area_m2",
	"floors",
	"construction_year",
	"efficiency_rating",
	"has_solar",
	"has_ac",
	"occupancy",
	"base_consumption_kwh",
	"peak_consumption_kwh",
	"total_floor_surface_m2",
	"estimated_monthly_kwh",
}

// WriteObservationsCSV writes the observation table. Timestamps are
// Malaysia-local ISO-8601 and consumption carries 4 decimals.
func WriteObservationsCSV(path string, observations []model.Observation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(observationHeader); err != nil {
		return err
	}
	for _, o := range observations {
		row := []string{
			o.BuildingID,
			fmtTime(o.Timestamp),
			fmtFloat(o.ConsumptionKWh, 4),
			fmtFloat(o.TemperatureC, 2),
			fmtFloat(o.Humidity, 3),
			fmtFloat(o.HeatIndexC, 2),
			string(o.BuildingType),
			o.ZoneName,
			strconv.Itoa(o.Hour),
			strconv.Itoa(o.DayOfWeek),
			strconv.Itoa(o.Month),
			fmtBool(o.IsWeekend),
			fmtBool(o.IsBusinessHour),
			fmtFloat(o.QualityScore, 3),
			fmtBool(o.Anomaly),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteBuildingsCSV writes the building metadata table.
func WriteBuildingsCSV(path string, meta []generator.BuildingMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(buildingHeader); err != nil {
		return err
	}
	for _, m := range meta {
		row := []string{
			m.ID,
			m.SourceID,
			fmtFloat(m.Latitude, 6),
			fmtFloat(m.Longitude, 6),
			m.ZoneName,
			string(m.BuildingType),
			fmtFloat(m.SurfaceAreaM2, 2),
			strconv.Itoa(m.Floors),
			strconv.Itoa(m.ConstructionYear),
			string(m.Efficiency),
			fmtBool(m.HasSolar),
			fmtBool(m.HasAC),
			string(m.Occupancy),
			fmtFloat(m.BaseConsumptionKWh, 4),
			fmtFloat(m.PeakConsumptionKWh, 4),
			fmtFloat(m.TotalFloorSurfaceM2, 2),
			fmtFloat(m.EstimatedMonthlyKWh, 1),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64, decimals int) string {
	return strconv.FormatFloat(x, 'f', decimals, 64)
}

func fmtBool(b bool) string {
	return strconv.FormatBool(b)
}
