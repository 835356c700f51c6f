// Package consumption turns a building, a timestamp, and the weather at that
// timestamp into an energy value. The staged pipeline is a behavioral
// contract: reordering stages changes numerical output.
package consumption

import (
	"math/rand"
	"time"

	"malaysia-energy-synth/internal/model"
)

const (
	// Fraction of the base rate drawn outside operating hours.
	standbyFraction = 0.20

	// Heat index above which climate coupling kicks in, degC.
	comfortThresholdC = 26.0

	// Climate sensitivity retained when a building has no air conditioning.
	noACSensitivity = 0.3

	seasonMonsoonFactor = 0.95
	seasonDryFactor     = 1.10

	noiseStd      = 0.05
	rareEventProb = 0.02
)

// Model computes consumption values against a fixed profile table.
type Model struct {
	Profiles model.Profiles
}

func New(profiles model.Profiles) *Model {
	if profiles == nil {
		profiles = model.DefaultProfiles()
	}
	return &Model{Profiles: profiles}
}

// Rate returns the deterministic hourly consumption rate (kWh per hour) for
// the building at the timestamp under the given weather. Stages in order:
// standby gating, efficiency and occupancy, climate coupling, season, diurnal
// shape, weekend factor, floor at zero.
func (m *Model) Rate(b *model.Building, ts time.Time, w model.WeatherSample) float64 {
	prof := m.Profiles.For(b.Type)
	hour := ts.Hour()
	weekend := model.MondayIndexedWeekday(ts) >= 5

	v := b.BaseConsumptionKWh
	if !b.ActiveAt(hour, weekend) {
		v *= standbyFraction
	}

	v *= b.EfficiencyFactor() * b.OccupancyFactor()

	v *= 1 + m.ClimateSensitivity(b)*max0(w.HeatIndexC-comfortThresholdC)/10.0

	if w.IsMonsoon {
		v *= seasonMonsoonFactor
	} else if w.IsDry {
		v *= seasonDryFactor
	}

	v *= prof.Diurnal[hour]

	if weekend {
		v *= prof.WeekendFactor
	}

	if v < 0 {
		v = 0
	}
	return v
}

// Energy returns the stochastic energy for one interval: the hourly rate
// scaled by the interval length, with Gaussian noise and an occasional
// rare-event multiplier, floored at zero.
func (m *Model) Energy(b *model.Building, ts time.Time, w model.WeatherSample, intervalHours float64, rng *rand.Rand) float64 {
	v := m.Rate(b, ts, w) * intervalHours

	v += rng.NormFloat64() * noiseStd * v
	if rng.Float64() < rareEventProb {
		v *= rareMultiplier(rng)
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ClimateSensitivity is the building's heat-coupling coefficient: the type's
// sensitivity, cut to 30% without air conditioning.
func (m *Model) ClimateSensitivity(b *model.Building) float64 {
	s := m.Profiles.For(b.Type).ClimateSensitivity
	if !b.HasAC {
		s *= noACSensitivity
	}
	return s
}

// ClimateSensitive reports whether the type is expected to visibly track the
// heat index, which feeds the per-observation plausibility check.
func (m *Model) ClimateSensitive(b *model.Building) bool {
	return m.ClimateSensitivity(b) >= 0.3
}

// rareMultiplier draws from {0.5, 1.5, 2.0} with weights {0.4, 0.4, 0.2},
// simulating outages and demand spikes.
func rareMultiplier(rng *rand.Rand) float64 {
	u := rng.Float64()
	switch {
	case u < 0.4:
		return 0.5
	case u < 0.8:
		return 1.5
	default:
		return 2.0
	}
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
