// Package generator orchestrates the climate and consumption models across
// the buildings x timestamps product and sizes requests before they run.
package generator

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"malaysia-energy-synth/internal/climate"
	"malaysia-energy-synth/internal/consumption"
	"malaysia-energy-synth/internal/model"
)

// Engine runs one generation pass. Seed fixes the per-building noise
// streams: building i draws from Seed+i regardless of worker count, so
// parallel and serial runs produce identical output.
type Engine struct {
	Climate     *climate.Model
	Consumption *consumption.Model
	Seed        int64
	Workers     int
}

func New(cl *climate.Model, cons *consumption.Model, seed int64) *Engine {
	if cl == nil {
		cl = climate.New(rand.New(rand.NewSource(seed)))
	}
	if cons == nil {
		cons = consumption.New(nil)
	}
	return &Engine{Climate: cl, Consumption: cons, Seed: seed, Workers: 1}
}

// Result is the complete output of a run.
type Result struct {
	Observations []model.Observation
	Weather      []model.WeatherSample
	Timestamps   []time.Time
	Warnings     []string
	Elapsed      time.Duration
}

// Run generates one observation per (building, timestamp) pair. Output order
// is stable: buildings as given, chronological within each building. The
// weather series is generated once and shared by every building.
func (e *Engine) Run(buildings []*model.Building, start, end time.Time, freq model.Frequency) (*Result, error) {
	if len(buildings) == 0 {
		return nil, fmt.Errorf("empty building list")
	}

	began := time.Now()
	timestamps := model.TimestampIndex(start, end, freq)
	if len(timestamps) == 0 {
		return nil, fmt.Errorf("empty timestamp range %s..%s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	weather := e.Climate.GenerateSeries(timestamps)

	batches := make([][]model.Observation, len(buildings))
	errs := make([]error, len(buildings))

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		for i, b := range buildings {
			batches[i], errs[i] = e.generateSeries(b, timestamps, weather, e.Seed+int64(i))
		}
	} else {
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, b := range buildings {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, b *model.Building) {
				defer wg.Done()
				defer func() { <-sem }()
				batches[i], errs[i] = e.generateSeries(b, timestamps, weather, e.Seed+int64(i))
			}(i, b)
		}
		wg.Wait()
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", buildings[i].ID, err)
		}
	}

	observations := make([]model.Observation, 0, len(buildings)*len(timestamps))
	for _, batch := range batches {
		observations = append(observations, batch...)
	}

	return &Result{
		Observations: observations,
		Weather:      weather,
		Timestamps:   timestamps,
		Elapsed:      time.Since(began),
	}, nil
}

func (e *Engine) generateSeries(b *model.Building, timestamps []time.Time, weather []model.WeatherSample, seed int64) ([]model.Observation, error) {
	if len(weather) != len(timestamps) {
		return nil, fmt.Errorf("weather series length %d does not match %d timestamps", len(weather), len(timestamps))
	}

	rng := rand.New(rand.NewSource(seed))
	sensitive := e.Consumption.ClimateSensitive(b)

	out := make([]model.Observation, 0, len(timestamps))
	for i, ts := range timestamps {
		w := weather[i]
		intervalHours := 1.0
		if i+1 < len(timestamps) {
			intervalHours = timestamps[i+1].Sub(ts).Hours()
		} else if i > 0 {
			intervalHours = ts.Sub(timestamps[i-1]).Hours()
		}
		kwh := e.Consumption.Energy(b, ts, w, intervalHours, rng)
		out = append(out, model.NewObservation(b.ID, ts, kwh, w, b.Type, b.ZoneName, sensitive))
	}
	return out, nil
}
