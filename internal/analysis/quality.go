// Package analysis scores and summarizes generated consumption tables.
package analysis

import (
	"math"
	"sort"

	"malaysia-energy-synth/internal/model"
)

// Score rates a generated dataset on a 0-100 scale. Deductions: negative
// values (up to -30), missing values (up to -40), a heavy tail where the
// 99.9th percentile exceeds 10x the mean (-10). A coefficient of variation
// in [0.2, 0.8] earns a +5 bonus for realistic variability.
func Score(observations []model.Observation) float64 {
	if len(observations) == 0 {
		return 0
	}

	var (
		negatives int
		missing   int
		vals      = make([]float64, 0, len(observations))
	)
	for _, o := range observations {
		if math.IsNaN(o.ConsumptionKWh) {
			missing++
			continue
		}
		if o.ConsumptionKWh < 0 {
			negatives++
		}
		vals = append(vals, o.ConsumptionKWh)
	}

	n := float64(len(observations))
	score := 100.0
	score -= 30.0 * float64(negatives) / n
	score -= 40.0 * float64(missing) / n

	if len(vals) > 0 {
		m := mean(vals)
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		if m > 0 && percentileSorted(sorted, 0.999) > 10*m {
			score -= 10.0
		}
		if m > 0 {
			cv := stddev(vals, m) / m
			if cv >= 0.2 && cv <= 0.8 {
				score += 5.0
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64, mean float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)))
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
