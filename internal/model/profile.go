package model

// Profile bundles the per-type generation parameters: the base coefficient
// driving consumption from floor area, the diurnal shape, and the calendar
// and climate adjustment factors.
//
// BaseCoefficient is kWh per m2 per day. The hourly base rate derived from it
// is the quantity all pipeline stages multiply; observation values are energy
// per interval, i.e. the hourly rate scaled by the interval length.
type Profile struct {
	BaseCoefficient    float64
	PeakMultiplier     float64
	Diurnal            [24]float64
	WeekendFactor      float64
	ClimateSensitivity float64

	// Default operating window applied when a record does not carry one.
	// OperatingStart == OperatingEnd means open around the clock.
	OperatingStart int
	OperatingEnd   int
	WeekendsActive bool
}

// Profiles maps a building type to its parameter set. Lookups for unknown
// types fall back to the residential entry, which must always be present.
type Profiles map[BuildingType]Profile

func (p Profiles) For(t BuildingType) Profile {
	if prof, ok := p[t]; ok {
		return prof
	}
	return p[TypeResidential]
}

// DefaultProfiles returns the built-in Malaysia parameter table.
func DefaultProfiles() Profiles {
	return Profiles{
		TypeResidential: {
			BaseCoefficient:    0.15,
			PeakMultiplier:     2.0,
			WeekendFactor:      1.2,
			ClimateSensitivity: 0.30,
			Diurnal: [24]float64{
				0.3, 0.3, 0.3, 0.3, 0.3, 0.5,
				0.9, 1.2, 1.0, 0.8, 0.7, 0.8,
				0.9, 0.9, 0.9, 0.9, 1.0, 1.1,
				1.3, 1.4, 1.3, 1.1, 0.8, 0.5,
			},
			OperatingStart: 0, OperatingEnd: 0, WeekendsActive: true,
		},
		TypeCommercial: {
			BaseCoefficient:    0.25,
			PeakMultiplier:     2.5,
			WeekendFactor:      0.8,
			ClimateSensitivity: 0.35,
			Diurnal: [24]float64{
				0.2, 0.2, 0.2, 0.2, 0.2, 0.2,
				0.2, 0.2, 0.5, 0.8, 1.0, 1.2,
				1.3, 1.3, 1.4, 1.4, 1.3, 1.2,
				1.2, 1.1, 1.0, 0.7, 0.4, 0.2,
			},
			OperatingStart: 9, OperatingEnd: 21, WeekendsActive: true,
		},
		TypeOffice: {
			BaseCoefficient:    0.30,
			PeakMultiplier:     3.0,
			WeekendFactor:      0.3,
			ClimateSensitivity: 0.35,
			Diurnal: [24]float64{
				0.05, 0.05, 0.05, 0.05, 0.05, 0.05,
				0.05, 0.3, 0.8, 1.0, 1.1, 1.2,
				1.1, 1.2, 1.3, 1.3, 1.2, 1.0,
				0.6, 0.3, 0.1, 0.05, 0.05, 0.05,
			},
			OperatingStart: 8, OperatingEnd: 18, WeekendsActive: false,
		},
		TypeIndustrial: {
			BaseCoefficient:    0.45,
			PeakMultiplier:     2.0,
			WeekendFactor:      0.7,
			ClimateSensitivity: 0.15,
			Diurnal: [24]float64{
				0.7, 0.7, 0.7, 0.7, 0.7, 0.7,
				0.9, 1.0, 1.1, 1.2, 1.2, 1.3,
				1.3, 1.3, 1.3, 1.2, 1.2, 1.1,
				1.0, 0.9, 0.8, 0.8, 0.7, 0.7,
			},
			OperatingStart: 6, OperatingEnd: 22, WeekendsActive: true,
		},
		TypeHospital: {
			BaseCoefficient:    0.40,
			PeakMultiplier:     1.8,
			WeekendFactor:      1.0,
			ClimateSensitivity: 0.25,
			Diurnal: [24]float64{
				0.85, 0.85, 0.85, 0.85, 0.85, 0.85,
				0.9, 0.95, 1.0, 1.05, 1.1, 1.15,
				1.15, 1.15, 1.15, 1.1, 1.1, 1.05,
				1.0, 1.0, 0.95, 0.9, 0.9, 0.85,
			},
			OperatingStart: 0, OperatingEnd: 0, WeekendsActive: true,
		},
		TypeSchool: {
			BaseCoefficient:    0.20,
			PeakMultiplier:     5.0,
			WeekendFactor:      0.2,
			ClimateSensitivity: 0.25,
			Diurnal: [24]float64{
				0.05, 0.05, 0.05, 0.05, 0.05, 0.05,
				0.05, 0.6, 1.0, 1.2, 1.2, 1.3,
				1.4, 1.3, 1.1, 0.8, 0.4, 0.2,
				0.05, 0.05, 0.05, 0.05, 0.05, 0.05,
			},
			OperatingStart: 7, OperatingEnd: 15, WeekendsActive: false,
		},
		TypeHotel: {
			BaseCoefficient:    0.35,
			PeakMultiplier:     1.8,
			WeekendFactor:      1.0,
			ClimateSensitivity: 0.40,
			Diurnal: [24]float64{
				0.6, 0.6, 0.6, 0.6, 0.6, 0.6,
				0.8, 1.0, 1.1, 1.0, 0.9, 1.0,
				1.1, 1.1, 1.1, 1.1, 1.1, 1.2,
				1.3, 1.3, 1.2, 1.1, 0.9, 0.7,
			},
			OperatingStart: 0, OperatingEnd: 0, WeekendsActive: true,
		},
		TypeWarehouse: {
			BaseCoefficient:    0.15,
			PeakMultiplier:     2.0,
			WeekendFactor:      0.6,
			ClimateSensitivity: 0.10,
			Diurnal: [24]float64{
				0.3, 0.3, 0.3, 0.3, 0.3, 0.3,
				0.6, 0.9, 1.1, 1.2, 1.2, 1.2,
				1.1, 1.2, 1.2, 1.2, 1.1, 0.9,
				0.6, 0.4, 0.3, 0.3, 0.3, 0.3,
			},
			OperatingStart: 6, OperatingEnd: 18, WeekendsActive: true,
		},
	}
}
