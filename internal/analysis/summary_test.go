package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malaysia-energy-synth/internal/model"
)

func summaryBuildings(t *testing.T) []*model.Building {
	t.Helper()
	recs := []model.BuildingRecord{
		{ID: "MY_RES", Latitude: 3.1, Longitude: 101.7, BuildingType: "residential", SurfaceAreaM2: 100},
		{ID: "MY_OFF", Latitude: 3.2, Longitude: 101.8, BuildingType: "office", SurfaceAreaM2: 300, EfficiencyRating: "B"},
	}
	buildings, errs := model.BuildFromRecords(recs, model.DefaultProfiles())
	require.Empty(t, errs)
	return buildings
}

func obsAt(id string, t time.Time, hour int, kwh float64, bt model.BuildingType) model.Observation {
	ts := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	return model.Observation{BuildingID: id, Timestamp: ts, Hour: hour, ConsumptionKWh: kwh, BuildingType: bt}
}

func TestSummarizeAggregates(t *testing.T) {
	buildings := summaryBuildings(t)
	loc := model.MalaysiaTime()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	observations := []model.Observation{
		obsAt("MY_RES", day, 10, 2.0, model.TypeResidential),
		obsAt("MY_RES", day, 19, 4.0, model.TypeResidential),
		obsAt("MY_OFF", day, 10, 8.0, model.TypeOffice),
		obsAt("MY_OFF", day, 14, 6.0, model.TypeOffice),
	}

	s := Summarize(buildings, observations)

	assert.Equal(t, 2, s.BuildingCount)
	assert.Equal(t, 1, s.CountByType[model.TypeResidential])
	assert.Equal(t, 1, s.CountByType[model.TypeOffice])
	assert.Equal(t, 1, s.Efficiency[model.RatingC])
	assert.Equal(t, 1, s.Efficiency[model.RatingB])
	assert.Equal(t, 400.0, s.TotalSurface)
	assert.Equal(t, 200.0, s.AvgSurface)

	assert.Equal(t, 4, s.ObservationCount)
	assert.Equal(t, 20.0, s.TotalKWh)
	assert.Equal(t, 5.0, s.AvgKWh)
	assert.Equal(t, 8.0, s.PeakKWh)
	assert.Equal(t, 2.0, s.MinKWh)

	res := s.ByType[model.TypeResidential]
	assert.Equal(t, 2, res.Observations)
	assert.Equal(t, 6.0, res.TotalKWh)
	assert.Equal(t, 3.0, res.AvgKWh)

	assert.Equal(t, day.Add(10*time.Hour), s.Start)
	assert.Equal(t, day.Add(19*time.Hour), s.End)
	assert.Empty(t, s.Warnings)
}

func TestSummarizePeakHours(t *testing.T) {
	buildings := summaryBuildings(t)
	loc := model.MalaysiaTime()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	observations := []model.Observation{
		obsAt("MY_RES", day, 10, 10.0, model.TypeResidential),
		obsAt("MY_RES", day, 12, 8.0, model.TypeResidential),
		obsAt("MY_RES", day, 14, 6.0, model.TypeResidential),
		obsAt("MY_RES", day, 3, 1.0, model.TypeResidential),
	}

	s := Summarize(buildings, observations)
	require.Len(t, s.PeakHours, 3)
	assert.Equal(t, 10, s.PeakHours[0].Hour)
	assert.Equal(t, 12, s.PeakHours[1].Hour)
	assert.Equal(t, 14, s.PeakHours[2].Hour)
	assert.Equal(t, 10.0, s.PeakHours[0].AvgKWh)
}

func TestSummarizeWarnings(t *testing.T) {
	buildings := summaryBuildings(t)
	loc := model.MalaysiaTime()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	observations := []model.Observation{
		obsAt("MY_RES", day, 10, -1.0, model.TypeResidential),
		obsAt("MY_RES", day, 10, 2.0, model.TypeResidential), // duplicate pair
		obsAt("MY_RES", day, 11, 2.0, model.TypeResidential),
	}

	s := Summarize(buildings, observations)
	require.Len(t, s.Warnings, 2)
	assert.Contains(t, s.Warnings[0], "negative consumption")
	assert.Contains(t, s.Warnings[1], "duplicate")
}

func TestSummarizeEmptyObservations(t *testing.T) {
	s := Summarize(summaryBuildings(t), nil)
	assert.Equal(t, 2, s.BuildingCount)
	assert.Equal(t, 0, s.ObservationCount)
	assert.Equal(t, 0.0, s.QualityScore)
}
