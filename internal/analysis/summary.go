package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"malaysia-energy-synth/internal/model"
)

// Summary is the descriptive report over one generation output. Quality
// findings are carried as warnings, never as errors.
type Summary struct {
	BuildingCount int                            `json:"building_count"`
	CountByType   map[model.BuildingType]int     `json:"count_by_type"`
	TotalSurface  float64                        `json:"total_surface_m2"`
	AvgSurface    float64                        `json:"avg_surface_m2"`
	Efficiency    map[model.EfficiencyRating]int `json:"efficiency_distribution"`

	ObservationCount int     `json:"observation_count"`
	TotalKWh         float64 `json:"total_kwh"`
	AvgKWh           float64 `json:"avg_kwh"`
	PeakKWh          float64 `json:"peak_kwh"`
	MinKWh           float64 `json:"min_kwh"`

	ByType map[model.BuildingType]TypeConsumption `json:"consumption_by_type"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	PeakHours []HourAverage `json:"peak_hours"`

	QualityScore float64  `json:"quality_score"`
	Warnings     []string `json:"warnings,omitempty"`
}

// TypeConsumption aggregates observations of one building type.
type TypeConsumption struct {
	Observations int     `json:"observations"`
	TotalKWh     float64 `json:"total_kwh"`
	AvgKWh       float64 `json:"avg_kwh"`
}

// HourAverage is the mean consumption for one hour of day across the table.
type HourAverage struct {
	Hour   int     `json:"hour"`
	AvgKWh float64 `json:"avg_kwh"`
}

// Summarize computes the descriptive report for a building list and its
// generated observations.
func Summarize(buildings []*model.Building, observations []model.Observation) Summary {
	s := Summary{
		BuildingCount: len(buildings),
		CountByType:   map[model.BuildingType]int{},
		Efficiency:    map[model.EfficiencyRating]int{},
		ByType:        map[model.BuildingType]TypeConsumption{},
	}

	for _, b := range buildings {
		s.CountByType[b.Type]++
		s.Efficiency[b.Efficiency]++
		s.TotalSurface += b.SurfaceAreaM2
	}
	if len(buildings) > 0 {
		s.AvgSurface = s.TotalSurface / float64(len(buildings))
	}

	s.ObservationCount = len(observations)
	if len(observations) == 0 {
		s.QualityScore = Score(observations)
		return s
	}

	var (
		negatives int
		missing   int
		hourSums  [24]float64
		hourCount [24]int
		seen      = make(map[string]struct{}, len(observations))
		dupes     int
	)
	s.MinKWh = math.Inf(1)
	s.Start = observations[0].Timestamp
	s.End = observations[0].Timestamp

	for _, o := range observations {
		v := o.ConsumptionKWh
		if math.IsNaN(v) {
			missing++
			continue
		}
		if v < 0 {
			negatives++
		}
		s.TotalKWh += v
		if v > s.PeakKWh {
			s.PeakKWh = v
		}
		if v < s.MinKWh {
			s.MinKWh = v
		}

		tc := s.ByType[o.BuildingType]
		tc.Observations++
		tc.TotalKWh += v
		s.ByType[o.BuildingType] = tc

		hourSums[o.Hour] += v
		hourCount[o.Hour]++

		if o.Timestamp.Before(s.Start) {
			s.Start = o.Timestamp
		}
		if o.Timestamp.After(s.End) {
			s.End = o.Timestamp
		}

		key := o.BuildingID + o.Timestamp.Format(time.RFC3339)
		if _, ok := seen[key]; ok {
			dupes++
		} else {
			seen[key] = struct{}{}
		}
	}
	s.AvgKWh = s.TotalKWh / float64(len(observations))
	for t, tc := range s.ByType {
		if tc.Observations > 0 {
			tc.AvgKWh = tc.TotalKWh / float64(tc.Observations)
			s.ByType[t] = tc
		}
	}

	s.PeakHours = topPeakHours(hourSums, hourCount, 3)
	s.QualityScore = Score(observations)

	if negatives > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%d observations with negative consumption", negatives))
	}
	if missing > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%d observations with missing consumption", missing))
	}
	if dupes > 0 {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%d duplicate (building, timestamp) pairs", dupes))
	}
	return s
}

func topPeakHours(sums [24]float64, counts [24]int, n int) []HourAverage {
	avgs := make([]HourAverage, 0, 24)
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		avgs = append(avgs, HourAverage{Hour: h, AvgKWh: sums[h] / float64(counts[h])})
	}
	sort.Slice(avgs, func(i, j int) bool {
		if avgs[i].AvgKWh != avgs[j].AvgKWh {
			return avgs[i].AvgKWh > avgs[j].AvgKWh
		}
		return avgs[i].Hour < avgs[j].Hour
	})
	if len(avgs) > n {
		avgs = avgs[:n]
	}
	return avgs
}
