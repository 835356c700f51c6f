// Package climate synthesizes a tropical Malaysia weather series: smooth
// diurnal temperature curves over fixed monthly normals, monsoon/dry-biased
// humidity, and the derived heat index.
package climate

import (
	"math"
	"math/rand"
	"time"

	"malaysia-energy-synth/internal/model"
)

// Monthly mean temperatures (degC), January first.
var monthlyNormals = [12]float64{
	26.5, 27.0, 27.5, 28.0, 28.5, 28.0,
	27.5, 27.5, 27.5, 27.5, 27.0, 26.5,
}

// Humidity base levels per season band.
const (
	humidityMonsoon = 0.85
	humidityDry     = 0.70
	humidityMid     = 0.78

	humidityJitterStd = 0.05
	humidityMin       = 0.3
	humidityMax       = 1.0
)

// Below this air temperature the heat-index regression is not meaningful and
// heat index equals the air temperature.
const heatIndexThresholdF = 80.0

// Model generates weather samples for arbitrary timestamp ranges.
// Temperature and heat index are deterministic in the timestamps; humidity
// jitter draws from the injected random source.
type Model struct {
	MonsoonMonths map[int]bool
	DryMonths     map[int]bool
	Rand          *rand.Rand
}

// New returns a model with the default Malaysia season bands. rng may be nil,
// in which case humidity jitter uses an unseeded source.
func New(rng *rand.Rand) *Model {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Model{
		MonsoonMonths: MonthSet(11, 12, 1, 2),
		DryMonths:     MonthSet(6, 7, 8),
		Rand:          rng,
	}
}

// MonthSet builds a month membership set from calendar month numbers.
func MonthSet(months ...int) map[int]bool {
	set := make(map[int]bool, len(months))
	for _, m := range months {
		set[m] = true
	}
	return set
}

// GenerateSeries produces one sample per timestamp, same order and length.
// Temperature and heat index depend only on the timestamps: the heat index is
// computed from the seasonal base humidity, so repeated calls over the same
// index differ in the humidity column alone.
func (m *Model) GenerateSeries(timestamps []time.Time) []model.WeatherSample {
	out := make([]model.WeatherSample, len(timestamps))
	for i, ts := range timestamps {
		month := int(ts.Month())
		temp := m.TemperatureAt(ts)
		base := m.baseHumidity(month)
		out[i] = model.WeatherSample{
			Timestamp:    ts,
			TemperatureC: temp,
			Humidity:     m.jitterHumidity(base),
			HeatIndexC:   HeatIndexC(temp, base),
			IsMonsoon:    m.MonsoonMonths[month],
			IsDry:        m.DryMonths[month],
		}
	}
	return out
}

// TemperatureAt is the deterministic part of the series: monthly normal plus
// the diurnal offset for the hour.
func (m *Model) TemperatureAt(ts time.Time) float64 {
	return monthlyNormals[ts.Month()-1] + hourOffset(ts.Hour())
}

// hourOffset shapes the diurnal curve: a night trough bottoming before dawn,
// a morning ramp, a sinusoidal early-afternoon peak, then decline and settle.
func hourOffset(hour int) float64 {
	switch {
	case hour <= 5:
		return -2.5 + 0.5*float64(hour)
	case hour <= 11:
		return 0.5 * float64(hour-5)
	case hour <= 15:
		return 3.0 + 1.5*math.Sin(math.Pi*float64(hour-11)/5.0)
	case hour <= 19:
		return 2.5 - float64(hour-16)*2.0/3.0
	default:
		return -0.5 * float64(hour-19)
	}
}

func (m *Model) baseHumidity(month int) float64 {
	if m.MonsoonMonths[month] {
		return humidityMonsoon
	}
	if m.DryMonths[month] {
		return humidityDry
	}
	return humidityMid
}

func (m *Model) jitterHumidity(base float64) float64 {
	h := base + m.Rand.NormFloat64()*humidityJitterStd
	if h < humidityMin {
		h = humidityMin
	}
	if h > humidityMax {
		h = humidityMax
	}
	return h
}

// HeatIndexC computes the NOAA (Rothfusz) heat index from air temperature
// (degC) and relative humidity (0..1). The regression operates in Fahrenheit
// and only applies above 80F; below that the heat index is the air
// temperature itself.
func HeatIndexC(tempC, humidity float64) float64 {
	tF := tempC*9.0/5.0 + 32.0
	if tF < heatIndexThresholdF {
		return tempC
	}
	r := humidity * 100.0
	hiF := -42.379 +
		2.04901523*tF +
		10.14333127*r -
		0.22475541*tF*r -
		6.83783e-3*tF*tF -
		5.481717e-2*r*r +
		1.22874e-3*tF*tF*r +
		8.5282e-4*tF*r*r -
		1.99e-6*tF*tF*r*r
	return (hiF - 32.0) * 5.0 / 9.0
}
