package consumption

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malaysia-energy-synth/internal/model"
)

func mustBuilding(t *testing.T, rec model.BuildingRecord) *model.Building {
	t.Helper()
	b, err := model.NewBuilding(rec, model.DefaultProfiles())
	require.NoError(t, err)
	return b
}

// neutralWeather carries a heat index at the comfort threshold and no season
// flags, so only the calendar stages shape the rate.
func neutralWeather(ts time.Time) model.WeatherSample {
	return model.WeatherSample{
		Timestamp:    ts,
		TemperatureC: 26.0,
		Humidity:     0.78,
		HeatIndexC:   26.0,
	}
}

func TestResidentialEveningPeak(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "residential", SurfaceAreaM2: 150,
	})
	loc := model.MalaysiaTime()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, loc) // Monday

	peakHour, peakRate := -1, 0.0
	for h := 0; h < 24; h++ {
		ts := day.Add(time.Duration(h) * time.Hour)
		if r := m.Rate(b, ts, neutralWeather(ts)); r > peakRate {
			peakHour, peakRate = h, r
		}
	}
	assert.Equal(t, 19, peakHour)
	// base 0.9375 kWh/h times the 1.4 evening shape factor.
	assert.InDelta(t, 0.9375*1.4, peakRate, 1e-9)
}

func TestStandbyOutsideOperatingHours(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "office", SurfaceAreaM2: 1000,
	})
	loc := model.MalaysiaTime()
	ts := time.Date(2024, 1, 1, 3, 0, 0, 0, loc)

	// base 12.5 kWh/h, standby 20%, night shape 0.05.
	assert.InDelta(t, 12.5*0.2*0.05, m.Rate(b, ts, neutralWeather(ts)), 1e-9)
}

func TestOfficeWeekendFactor(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "office", SurfaceAreaM2: 1000,
	})
	loc := model.MalaysiaTime()
	saturday := time.Date(2024, 1, 6, 12, 0, 0, 0, loc)

	// Closed on weekends: standby, midday shape 1.1, weekend factor 0.3.
	assert.InDelta(t, 12.5*0.2*1.1*0.3, m.Rate(b, saturday, neutralWeather(saturday)), 1e-9)
}

func TestClimateCoupling(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "residential", SurfaceAreaM2: 150,
	})
	loc := model.MalaysiaTime()
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)

	cool := neutralWeather(ts)
	hot := cool
	hot.HeatIndexC = 36.0

	coolRate := m.Rate(b, ts, cool)
	hotRate := m.Rate(b, ts, hot)
	// Sensitivity 0.30 over a 10 degree excess adds 30%.
	assert.InDelta(t, coolRate*1.3, hotRate, 1e-9)
}

func TestNoACReducesSensitivity(t *testing.T) {
	m := New(nil)
	noAC := false
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "hotel", SurfaceAreaM2: 500, HasAC: &noAC,
	})

	assert.InDelta(t, 0.40*0.3, m.ClimateSensitivity(b), 1e-9)
	assert.False(t, m.ClimateSensitive(b))

	withAC := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "hotel", SurfaceAreaM2: 500,
	})
	assert.True(t, m.ClimateSensitive(withAC))
}

func TestSeasonFactors(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "residential", SurfaceAreaM2: 150,
	})
	loc := model.MalaysiaTime()
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, loc)

	plain := neutralWeather(ts)
	monsoon := plain
	monsoon.IsMonsoon = true
	dry := plain
	dry.IsDry = true

	base := m.Rate(b, ts, plain)
	assert.InDelta(t, base*0.95, m.Rate(b, ts, monsoon), 1e-9)
	assert.InDelta(t, base*1.10, m.Rate(b, ts, dry), 1e-9)
}

func TestEnergyScalesWithInterval(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "hospital", SurfaceAreaM2: 5000,
	})
	loc := model.MalaysiaTime()
	ts := time.Date(2024, 1, 3, 10, 0, 0, 0, loc)
	w := neutralWeather(ts)

	full := m.Energy(b, ts, w, 1.0, rand.New(rand.NewSource(5)))
	half := m.Energy(b, ts, w, 0.5, rand.New(rand.NewSource(5)))
	// Same noise draw, half the interval.
	assert.InDelta(t, full/2, half, full*0.01)
}

func TestEnergyDeterministicPerSeed(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "commercial", SurfaceAreaM2: 800,
	})
	loc := model.MalaysiaTime()
	ts := time.Date(2024, 1, 3, 15, 0, 0, 0, loc)
	w := neutralWeather(ts)

	a := m.Energy(b, ts, w, 0.5, rand.New(rand.NewSource(11)))
	bb := m.Energy(b, ts, w, 0.5, rand.New(rand.NewSource(11)))
	assert.Equal(t, a, bb)
}

func TestEnergyNeverNegative(t *testing.T) {
	m := New(nil)
	b := mustBuilding(t, model.BuildingRecord{
		Latitude: 3.1, Longitude: 101.7, BuildingType: "warehouse", SurfaceAreaM2: 50,
	})
	loc := model.MalaysiaTime()
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 2000; i++ {
		ts := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Add(time.Duration(i) * 30 * time.Minute)
		v := m.Energy(b, ts, neutralWeather(ts), 0.5, rng)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}
