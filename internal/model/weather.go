package model

import "time"

// WeatherSample is one entry of the synthetic weather series. The series is
// produced once per generation run and shared read-only across buildings.
type WeatherSample struct {
	Timestamp    time.Time
	TemperatureC float64
	// Relative humidity as a fraction 0..1.
	Humidity   float64
	HeatIndexC float64
	IsMonsoon  bool
	IsDry      bool
}
