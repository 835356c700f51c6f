package climate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malaysia-energy-synth/internal/model"
)

func TestTemperatureDiurnalShape(t *testing.T) {
	m := New(rand.New(rand.NewSource(1)))
	loc := model.MalaysiaTime()

	night := m.TemperatureAt(time.Date(2024, 3, 15, 3, 0, 0, 0, loc))
	afternoon := m.TemperatureAt(time.Date(2024, 3, 15, 14, 0, 0, 0, loc))

	assert.Greater(t, afternoon, night)
	// March normal is 27.5; offsets stay within a few degrees of it.
	assert.InDelta(t, 27.5, night, 3.0)
	assert.InDelta(t, 27.5, afternoon, 5.0)
}

func TestTemperatureDeterministic(t *testing.T) {
	m := New(rand.New(rand.NewSource(1)))
	loc := model.MalaysiaTime()
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, m.TemperatureAt(ts), m.TemperatureAt(ts))
}

func TestHumiditySeasonBands(t *testing.T) {
	m := New(rand.New(rand.NewSource(7)))

	sample := func(month int, n int) float64 {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += m.jitterHumidity(m.baseHumidity(month))
		}
		return sum / float64(n)
	}

	monsoon := sample(12, 2000)
	dry := sample(7, 2000)
	mid := sample(4, 2000)

	assert.InDelta(t, 0.85, monsoon, 0.02)
	assert.InDelta(t, 0.70, dry, 0.02)
	assert.InDelta(t, 0.78, mid, 0.02)
	assert.Greater(t, monsoon, dry)
}

func TestHumidityClamped(t *testing.T) {
	m := New(rand.New(rand.NewSource(3)))
	for i := 0; i < 5000; i++ {
		h := m.jitterHumidity(m.baseHumidity(12))
		assert.GreaterOrEqual(t, h, 0.3)
		assert.LessOrEqual(t, h, 1.0)
	}
}

func TestGenerateSeriesRepeatableTemperatureAndHeatIndex(t *testing.T) {
	m := New(rand.New(rand.NewSource(21)))
	loc := model.MalaysiaTime()
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, loc)
	timestamps := model.TimestampIndex(start, start.Add(24*time.Hour-time.Second), model.FreqHourly)

	first := m.GenerateSeries(timestamps)
	second := m.GenerateSeries(timestamps)
	require.Len(t, second, len(first))

	hiDiffersFromTemp := false
	for i := range first {
		assert.Equal(t, first[i].TemperatureC, second[i].TemperatureC, "hour %d", i)
		assert.Equal(t, first[i].HeatIndexC, second[i].HeatIndexC, "hour %d", i)
		if first[i].HeatIndexC != first[i].TemperatureC {
			hiDiffersFromTemp = true
		}
	}
	// May afternoons exceed the regression threshold, so the heat index is
	// exercised rather than falling back to the air temperature.
	assert.True(t, hiDiffersFromTemp)
}

func TestHeatIndexBelowThresholdEqualsTemperature(t *testing.T) {
	// 26.0C is 78.8F, below the regression threshold.
	assert.Equal(t, 26.0, HeatIndexC(26.0, 0.9))
}

func TestHeatIndexAmplifiesHumidHeat(t *testing.T) {
	humid := HeatIndexC(32.0, 0.85)
	drier := HeatIndexC(32.0, 0.50)
	assert.Greater(t, humid, 32.0)
	assert.Greater(t, humid, drier)
}

func TestGenerateSeriesAlignment(t *testing.T) {
	m := New(rand.New(rand.NewSource(9)))
	loc := model.MalaysiaTime()
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, loc)
	timestamps := model.TimestampIndex(start, start.Add(6*time.Hour), model.FreqHourly)

	series := m.GenerateSeries(timestamps)
	require.Len(t, series, len(timestamps))
	for i, w := range series {
		assert.Equal(t, timestamps[i], w.Timestamp)
		assert.True(t, w.IsMonsoon)
		assert.False(t, w.IsDry)
	}
}

func TestSeasonOverrides(t *testing.T) {
	m := New(rand.New(rand.NewSource(2)))
	m.MonsoonMonths = MonthSet(3)
	m.DryMonths = MonthSet(4)

	loc := model.MalaysiaTime()
	march := m.GenerateSeries([]time.Time{time.Date(2024, 3, 1, 12, 0, 0, 0, loc)})
	april := m.GenerateSeries([]time.Time{time.Date(2024, 4, 1, 12, 0, 0, 0, loc)})

	assert.True(t, march[0].IsMonsoon)
	assert.True(t, april[0].IsDry)
}
