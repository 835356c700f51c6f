package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/model"
)

// WriteWorkbookXLSX writes both output tables into one workbook, buildings
// and observations on separate sheets.
func WriteWorkbookXLSX(path string, meta []generator.BuildingMetadata, observations []model.Observation) error {
	f := excelize.NewFile()
	buildingsSheet := "buildings"
	observationsSheet := "observations"
	f.SetSheetName("Sheet1", buildingsSheet)
	if _, err := f.NewSheet(observationsSheet); err != nil {
		return err
	}

	for col, name := range buildingHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		_ = f.SetCellValue(buildingsSheet, cell, name)
	}
	for i, m := range meta {
		row := i + 2
		values := []interface{}{
			m.ID, m.SourceID, m.Latitude, m.Longitude, m.ZoneName,
			string(m.BuildingType), m.SurfaceAreaM2, m.Floors, m.ConstructionYear,
			string(m.Efficiency), m.HasSolar, m.HasAC, string(m.Occupancy),
			m.BaseConsumptionKWh, m.PeakConsumptionKWh,
			m.TotalFloorSurfaceM2, m.EstimatedMonthlyKWh,
		}
		if err := setRow(f, buildingsSheet, row, values); err != nil {
			return err
		}
	}

	for col, name := range observationHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		_ = f.SetCellValue(observationsSheet, cell, name)
	}
	for i, o := range observations {
		row := i + 2
		values := []interface{}{
			o.BuildingID, o.Timestamp.Format(time.RFC3339), o.ConsumptionKWh,
			o.TemperatureC, o.Humidity, o.HeatIndexC,
			string(o.BuildingType), o.ZoneName,
			o.Hour, o.DayOfWeek, o.Month, o.IsWeekend, o.IsBusinessHour,
			o.QualityScore, o.Anomaly,
		}
		if err := setRow(f, observationsSheet, row, values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("sheet %s cell %s: %w", sheet, cell, err)
		}
	}
	return nil
}
