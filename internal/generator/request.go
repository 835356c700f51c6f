package generator

import (
	"fmt"
	"time"

	"malaysia-energy-synth/internal/model"
)

// Caller-imposed request ceilings.
const (
	MaxBuildings    = 50000
	WarnBuildings   = 10000
	MaxSpanDays     = 365
	maxObservations = 500_000_000
)

// ValidateRequest checks request parameters before any computation. It
// returns the parsed frequency together with warnings (request still runs)
// and errors (request must be rejected). No partial results follow an error.
func ValidateRequest(start, end time.Time, freqToken string, buildingCount int) (model.Frequency, []string, []string) {
	var warnings, errs []string

	freq, err := model.ParseFrequency(freqToken)
	if err != nil {
		errs = append(errs, err.Error())
	}

	if !end.After(start) {
		errs = append(errs, "end date must be after start date")
	} else if int(end.Sub(start)/(24*time.Hour)) > MaxSpanDays {
		// Whole elapsed days, so a date range expanded to end-of-day (a full
		// leap year included) is not pushed over the limit by the final
		// partial day.
		errs = append(errs, fmt.Sprintf("maximum period exceeded: %d days allowed", MaxSpanDays))
	}

	if buildingCount < 1 {
		errs = append(errs, "at least one building is required")
	} else if buildingCount > MaxBuildings {
		errs = append(errs, fmt.Sprintf("building count %d exceeds the %d ceiling", buildingCount, MaxBuildings))
	} else if buildingCount > WarnBuildings {
		warnings = append(warnings, fmt.Sprintf("large request: %d buildings (above %d); expect a long run", buildingCount, WarnBuildings))
	}

	if len(errs) == 0 {
		if total := buildingCount * len(model.TimestampIndex(start, end, freq)); total > maxObservations {
			errs = append(errs, fmt.Sprintf("too many observations (%d); reduce the period or the building count", total))
		}
	}

	return freq, warnings, errs
}
