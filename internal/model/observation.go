package model

import "time"

// Observation is one (building, timestamp) output row. Calendar flags,
// the per-row quality score and the anomaly flag are derived at construction
// and never recomputed.
type Observation struct {
	BuildingID string    `json:"building_id"`
	Timestamp  time.Time `json:"timestamp"`

	ConsumptionKWh float64 `json:"consumption_kwh"`

	TemperatureC float64 `json:"temperature_c"`
	Humidity     float64 `json:"humidity"`
	HeatIndexC   float64 `json:"heat_index"`

	BuildingType BuildingType `json:"building_type"`
	ZoneName     string       `json:"zone_name,omitempty"`

	Hour           int  `json:"hour"`
	DayOfWeek      int  `json:"day_of_week"`
	Month          int  `json:"month"`
	IsWeekend      bool `json:"is_weekend"`
	IsBusinessHour bool `json:"is_business_hour"`

	QualityScore float64 `json:"data_quality_score"`
	Anomaly      bool    `json:"anomaly_flag"`
}

// NewObservation derives calendar flags, the quality score and the anomaly
// flag from the inputs. climateSensitive marks types whose consumption is
// expected to track the heat index (used for the implausible-coupling check).
func NewObservation(buildingID string, ts time.Time, consumptionKWh float64, w WeatherSample, t BuildingType, zone string, climateSensitive bool) Observation {
	o := Observation{
		BuildingID:     buildingID,
		Timestamp:      ts,
		ConsumptionKWh: consumptionKWh,
		TemperatureC:   w.TemperatureC,
		Humidity:       w.Humidity,
		HeatIndexC:     w.HeatIndexC,
		BuildingType:   t,
		ZoneName:       zone,
	}
	o.Hour = ts.Hour()
	o.DayOfWeek = MondayIndexedWeekday(ts)
	o.Month = int(ts.Month())
	o.IsWeekend = o.DayOfWeek >= 5
	o.IsBusinessHour = o.Hour >= 8 && o.Hour <= 18

	o.QualityScore = o.scoreQuality(climateSensitive)
	o.Anomaly = o.detectAnomaly()
	return o
}

// MondayIndexedWeekday returns the weekday with Monday as 0 and Sunday as 6.
func MondayIndexedWeekday(ts time.Time) int {
	return (int(ts.Weekday()) + 6) % 7
}

func (o Observation) scoreQuality(climateSensitive bool) float64 {
	score := 1.0
	if o.ConsumptionKWh < 0 {
		score -= 0.5
	} else if o.ConsumptionKWh == 0 {
		score -= 0.2
	}
	// Near-zero draw during strong heat is implausible for AC-driven types.
	if climateSensitive && o.HeatIndexC > 30 && o.ConsumptionKWh < 1 {
		score -= 0.1
	}
	if o.Humidity < 0.4 || o.Humidity > 1.0 {
		score -= 0.1
	}
	if score < 0 {
		score = 0
	}
	return score
}

func (o Observation) detectAnomaly() bool {
	switch {
	case o.ConsumptionKWh > 100:
		return true
	case o.ConsumptionKWh < 0:
		return true
	case o.TemperatureC < 15 || o.TemperatureC > 45:
		return true
	case o.Humidity < 0.3 || o.Humidity > 1.0:
		return true
	}
	return false
}
