package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type BuildingType string

const (
	TypeResidential BuildingType = "residential"
	TypeCommercial  BuildingType = "commercial"
	TypeOffice      BuildingType = "office"
	TypeIndustrial  BuildingType = "industrial"
	TypeHospital    BuildingType = "hospital"
	TypeSchool      BuildingType = "school"
	TypeHotel       BuildingType = "hotel"
	TypeWarehouse   BuildingType = "warehouse"
)

// EfficiencyRating is the ordinal A-E energy label. Unknown ratings are
// treated as C (standard).
type EfficiencyRating string

const (
	RatingA EfficiencyRating = "A"
	RatingB EfficiencyRating = "B"
	RatingC EfficiencyRating = "C"
	RatingD EfficiencyRating = "D"
	RatingE EfficiencyRating = "E"
)

func (r EfficiencyRating) Factor() float64 {
	switch r {
	case RatingA:
		return 0.7
	case RatingB:
		return 0.85
	case RatingD:
		return 1.15
	case RatingE:
		return 1.3
	default:
		return 1.0
	}
}

type OccupancyLevel string

const (
	OccupancyVacant      OccupancyLevel = "vacant"
	OccupancyLow         OccupancyLevel = "low"
	OccupancyStandard    OccupancyLevel = "standard"
	OccupancyHigh        OccupancyLevel = "high"
	OccupancyOvercrowded OccupancyLevel = "overcrowded"
)

func (o OccupancyLevel) Factor() float64 {
	switch o {
	case OccupancyVacant:
		return 0.1
	case OccupancyLow:
		return 0.5
	case OccupancyHigh:
		return 1.4
	case OccupancyOvercrowded:
		return 1.8
	default:
		return 1.0
	}
}

// Geographic bounds for Malaysia. Records outside these are rejected.
const (
	MinLatitude  = 0.5
	MaxLatitude  = 7.5
	MinLongitude = 99.0
	MaxLongitude = 120.0
)

// Base consumption safety limits, in kWh per day.
const (
	minDailyConsumptionKWh = 5.0
	maxDailyConsumptionKWh = 10000.0
)

// BuildingRecord is the raw input shape, typically decoded from a JSON
// building list produced by an external acquisition step. Optional fields are
// pointers so absence is distinguishable from zero.
type BuildingRecord struct {
	ID       string `json:"id,omitempty"`
	SourceID string `json:"source_id,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ZoneName  string  `json:"zone_name,omitempty"`

	BuildingType     string  `json:"building_type"`
	SurfaceAreaM2    float64 `json:"surface_area_m2"`
	Floors           int     `json:"floors,omitempty"`
	ConstructionYear int     `json:"construction_year,omitempty"`

	// Daily kWh; when zero, derived from type and surface.
	BaseConsumptionKWh float64 `json:"base_consumption_kwh,omitempty"`

	EfficiencyRating string `json:"efficiency_rating,omitempty"`
	HasSolar         bool   `json:"has_solar,omitempty"`
	HasAC            *bool  `json:"has_ac,omitempty"`

	Occupancy      string `json:"occupancy,omitempty"`
	OperatingStart *int   `json:"operating_start,omitempty"`
	OperatingEnd   *int   `json:"operating_end,omitempty"`
	WeekendsActive *bool  `json:"weekends_active,omitempty"`
}

// Building is the normalized entity generation runs over. Immutable after
// construction except through UpdateParameters.
type Building struct {
	ID       string
	SourceID string

	Latitude  float64
	Longitude float64
	ZoneName  string

	Type             BuildingType
	SurfaceAreaM2    float64
	Floors           int
	ConstructionYear int

	// BaseConsumptionKWh is the hourly base rate; PeakConsumptionKWh its
	// type-dependent peak. Both re-derived by UpdateParameters.
	BaseConsumptionKWh float64
	PeakConsumptionKWh float64
	Efficiency         EfficiencyRating
	HasSolar           bool
	HasAC              bool

	Occupancy      OccupancyLevel
	OperatingStart int
	OperatingEnd   int
	WeekendsActive bool
}

// NewBuilding validates and normalizes a raw record. Schedule fields missing
// from the record take the type profile's defaults.
func NewBuilding(rec BuildingRecord, profiles Profiles) (*Building, error) {
	b := &Building{
		ID:               rec.ID,
		SourceID:         rec.SourceID,
		Latitude:         rec.Latitude,
		Longitude:        rec.Longitude,
		ZoneName:         rec.ZoneName,
		Type:             NormalizeType(rec.BuildingType),
		SurfaceAreaM2:    rec.SurfaceAreaM2,
		Floors:           rec.Floors,
		ConstructionYear: rec.ConstructionYear,
		Efficiency:       normalizeRating(rec.EfficiencyRating),
		HasSolar:         rec.HasSolar,
		HasAC:            true,
		Occupancy:        normalizeOccupancy(rec.Occupancy),
	}
	if rec.HasAC != nil {
		b.HasAC = *rec.HasAC
	}
	if b.ID == "" {
		b.ID = newBuildingID()
	}
	if b.Floors < 1 {
		b.Floors = 1
	}

	prof := profiles.For(b.Type)
	b.OperatingStart = prof.OperatingStart
	b.OperatingEnd = prof.OperatingEnd
	b.WeekendsActive = prof.WeekendsActive
	if rec.OperatingStart != nil {
		b.OperatingStart = *rec.OperatingStart
	}
	if rec.OperatingEnd != nil {
		b.OperatingEnd = *rec.OperatingEnd
	}
	if rec.WeekendsActive != nil {
		b.WeekendsActive = *rec.WeekendsActive
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.deriveConsumption(prof, rec.BaseConsumptionKWh)
	return b, nil
}

func (b *Building) Validate() error {
	if b.Latitude < MinLatitude || b.Latitude > MaxLatitude {
		return fmt.Errorf("latitude %.4f outside Malaysia bounds [%.1f, %.1f]", b.Latitude, MinLatitude, MaxLatitude)
	}
	if b.Longitude < MinLongitude || b.Longitude > MaxLongitude {
		return fmt.Errorf("longitude %.4f outside Malaysia bounds [%.1f, %.1f]", b.Longitude, MinLongitude, MaxLongitude)
	}
	if b.SurfaceAreaM2 <= 0 {
		return fmt.Errorf("surface area must be > 0, got %.2f", b.SurfaceAreaM2)
	}
	if b.OperatingStart < 0 || b.OperatingStart > 23 || b.OperatingEnd < 0 || b.OperatingEnd > 23 {
		return errors.New("operating hours must be within 0..23")
	}
	return nil
}

// deriveConsumption sets the hourly base rate and peak. dailyKWh overrides
// the coefficient-derived value when positive; both paths are clamped to the
// same daily safety limits.
func (b *Building) deriveConsumption(prof Profile, dailyKWh float64) {
	if dailyKWh <= 0 {
		dailyKWh = prof.BaseCoefficient * b.SurfaceAreaM2
	}
	if dailyKWh < minDailyConsumptionKWh {
		dailyKWh = minDailyConsumptionKWh
	}
	if dailyKWh > maxDailyConsumptionKWh {
		dailyKWh = maxDailyConsumptionKWh
	}
	b.BaseConsumptionKWh = dailyKWh / 24.0
	b.PeakConsumptionKWh = b.BaseConsumptionKWh * prof.PeakMultiplier
}

// UpdateParameters changes type and surface and re-derives the base and peak
// consumption. This is the only sanctioned mutation after construction.
func (b *Building) UpdateParameters(profiles Profiles, t BuildingType, surfaceM2 float64) error {
	if surfaceM2 <= 0 {
		return fmt.Errorf("surface area must be > 0, got %.2f", surfaceM2)
	}
	b.Type = NormalizeType(string(t))
	b.SurfaceAreaM2 = surfaceM2
	b.deriveConsumption(profiles.For(b.Type), 0)
	return nil
}

func (b *Building) EfficiencyFactor() float64 { return b.Efficiency.Factor() }

func (b *Building) OccupancyFactor() float64 { return b.Occupancy.Factor() }

// ActiveAt reports whether the building is operating at the given hour.
// A window whose end precedes its start wraps past midnight; equal start and
// end means always open.
func (b *Building) ActiveAt(hour int, weekend bool) bool {
	if weekend && !b.WeekendsActive {
		return false
	}
	start, end := b.OperatingStart, b.OperatingEnd
	switch {
	case start == end:
		return true
	case start < end:
		return hour >= start && hour < end
	default:
		return hour >= start || hour < end
	}
}

// NormalizeType maps raw building-type labels (including common OSM tag
// values) onto the supported categories. Unknown labels default to
// residential.
func NormalizeType(raw string) BuildingType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "residential", "house", "apartment", "apartments", "detached", "terrace", "yes", "true", "":
		return TypeResidential
	case "commercial", "retail", "shop", "restaurant", "supermarket":
		return TypeCommercial
	case "office", "public", "government":
		return TypeOffice
	case "industrial", "factory", "manufacture":
		return TypeIndustrial
	case "hospital", "clinic", "healthcare":
		return TypeHospital
	case "school", "university", "college", "kindergarten":
		return TypeSchool
	case "hotel", "hostel", "resort":
		return TypeHotel
	case "warehouse", "storage":
		return TypeWarehouse
	default:
		return TypeResidential
	}
}

func normalizeRating(raw string) EfficiencyRating {
	switch EfficiencyRating(strings.ToUpper(strings.TrimSpace(raw))) {
	case RatingA:
		return RatingA
	case RatingB:
		return RatingB
	case RatingD:
		return RatingD
	case RatingE:
		return RatingE
	default:
		return RatingC
	}
}

func normalizeOccupancy(raw string) OccupancyLevel {
	switch OccupancyLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case OccupancyVacant:
		return OccupancyVacant
	case OccupancyLow:
		return OccupancyLow
	case OccupancyHigh:
		return OccupancyHigh
	case OccupancyOvercrowded:
		return OccupancyOvercrowded
	default:
		return OccupancyStandard
	}
}

func newBuildingID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "MY_" + strings.ToUpper(hex[:8])
}

// BuildFromRecords constructs every valid building from raw records and
// collects per-index error strings for the rest. Invalid records are excluded
// rather than failing the whole list.
func BuildFromRecords(recs []BuildingRecord, profiles Profiles) ([]*Building, []string) {
	buildings := make([]*Building, 0, len(recs))
	var errs []string
	for i, rec := range recs {
		b, err := NewBuilding(rec, profiles)
		if err != nil {
			errs = append(errs, fmt.Sprintf("building %d: %v", i, err))
			continue
		}
		buildings = append(buildings, b)
	}
	return buildings, errs
}
