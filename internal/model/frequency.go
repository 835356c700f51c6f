package model

import (
	"fmt"
	"sync"
	"time"
)

// Frequency is a sampling-interval token. The tokens follow the pandas
// offset aliases the upstream tooling expects on the wire.
type Frequency string

const (
	Freq15Min  Frequency = "15T"
	Freq30Min  Frequency = "30T"
	FreqHourly Frequency = "1H"
	Freq3Hour  Frequency = "3H"
	FreqDaily  Frequency = "D"
)

// SupportedFrequencies lists valid tokens in ascending interval order.
func SupportedFrequencies() []Frequency {
	return []Frequency{Freq15Min, Freq30Min, FreqHourly, Freq3Hour, FreqDaily}
}

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Freq15Min, Freq30Min, FreqHourly, Freq3Hour, FreqDaily:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("unsupported frequency %q (supported: 15T, 30T, 1H, 3H, D)", s)
	}
}

func (f Frequency) Duration() time.Duration {
	switch f {
	case Freq15Min:
		return 15 * time.Minute
	case Freq30Min:
		return 30 * time.Minute
	case Freq3Hour:
		return 3 * time.Hour
	case FreqDaily:
		return 24 * time.Hour
	default:
		return time.Hour
	}
}

func (f Frequency) Hours() float64 {
	return f.Duration().Hours()
}

var (
	malaysiaOnce sync.Once
	malaysiaLoc  *time.Location
)

// MalaysiaTime returns the Malaysia civil time zone. Falls back to a fixed
// UTC+8 zone when the tz database is unavailable.
func MalaysiaTime() *time.Location {
	malaysiaOnce.Do(func() {
		loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
		if err != nil {
			loc = time.FixedZone("MYT", 8*3600)
		}
		malaysiaLoc = loc
	})
	return malaysiaLoc
}

// TimestampIndex builds the inclusive sample index from start to end in
// Malaysia local time. Returns nil when end precedes start.
func TimestampIndex(start, end time.Time, f Frequency) []time.Time {
	start = start.In(MalaysiaTime())
	end = end.In(MalaysiaTime())
	if end.Before(start) {
		return nil
	}
	step := f.Duration()
	out := make([]time.Time, 0, int(end.Sub(start)/step)+1)
	for t := start; !t.After(end); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}
