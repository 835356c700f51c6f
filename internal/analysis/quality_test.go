package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"malaysia-energy-synth/internal/model"
)

func obsWith(values []float64) []model.Observation {
	loc := model.MalaysiaTime()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	out := make([]model.Observation, len(values))
	for i, v := range values {
		out[i] = model.Observation{
			BuildingID:     "MY_Q",
			Timestamp:      base.Add(time.Duration(i) * time.Hour),
			ConsumptionKWh: v,
		}
	}
	return out
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestScoreEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Score(nil))
}

func TestScoreCleanConstantIsPerfect(t *testing.T) {
	assert.Equal(t, 100.0, Score(obsWith(constant(100, 5.0))))
}

func TestScorePenalizesNegatives(t *testing.T) {
	clean := Score(obsWith(constant(100, 5.0)))
	vals := constant(100, 5.0)
	for i := 0; i < 10; i++ {
		vals[i] = -0.1
	}
	assert.Less(t, Score(obsWith(vals)), clean)

	// All negative: the full 30-point deduction, no bonus paths.
	assert.InDelta(t, 70.0, Score(obsWith(constant(50, -1.0))), 1e-9)
}

func TestScorePenalizesMissing(t *testing.T) {
	vals := constant(100, 5.0)
	for i := 0; i < 25; i++ {
		vals[i] = math.NaN()
	}
	// 25% missing costs 10 points.
	assert.InDelta(t, 90.0, Score(obsWith(vals)), 1e-9)
}

func TestScorePenalizesHeavyTail(t *testing.T) {
	vals := constant(100, 1.0)
	vals[99] = 500.0
	// P99.9 far above 10x the mean, CV out of the bonus band.
	assert.InDelta(t, 90.0, Score(obsWith(vals)), 1e-9)
}

func TestScoreClampedToRange(t *testing.T) {
	vals := constant(10, -1.0)
	for i := range vals {
		if i%2 == 0 {
			vals[i] = math.NaN()
		}
	}
	s := Score(obsWith(vals))
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 100.0)
}
