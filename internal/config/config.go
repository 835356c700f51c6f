package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"malaysia-energy-synth/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: highest-priority zone catalog source.
	ZoneFile string `yaml:"zone_file"`

	Climate    ClimateConfig            `yaml:"climate"`
	Generation GenerationConfig         `yaml:"generation"`
	Profiles   map[string]ProfileConfig `yaml:"profiles"`
}

type ClimateConfig struct {
	MonsoonMonths []int `yaml:"monsoon_months"`
	DryMonths     []int `yaml:"dry_months"`
}

type GenerationConfig struct {
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Frequency string `yaml:"frequency"`
	Seed      int64  `yaml:"seed"`
	Workers   int    `yaml:"workers"`
}

// ProfileConfig overlays selected fields of a built-in type profile.
// Zero-valued fields keep the built-in value.
type ProfileConfig struct {
	BaseCoefficient    float64 `yaml:"base_coefficient_kwh_m2_day"`
	PeakMultiplier     float64 `yaml:"peak_multiplier"`
	WeekendFactor      float64 `yaml:"weekend_factor"`
	ClimateSensitivity float64 `yaml:"climate_sensitivity"`
	OperatingStart     *int    `yaml:"operating_start"`
	OperatingEnd       *int    `yaml:"operating_end"`
	WeekendsActive     *bool   `yaml:"weekends_active"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Generation.Frequency == "" {
		c.Generation.Frequency = string(model.Freq30Min)
	}
	if c.Generation.Workers == 0 {
		c.Generation.Workers = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without validating it. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	for _, m := range append(append([]int{}, c.Climate.MonsoonMonths...), c.Climate.DryMonths...) {
		if m < 1 || m > 12 {
			return fmt.Errorf("climate month %d out of range 1..12", m)
		}
	}
	if c.Generation.Frequency != "" {
		if _, err := model.ParseFrequency(c.Generation.Frequency); err != nil {
			return fmt.Errorf("generation config invalid: %w", err)
		}
	}
	if c.Generation.StartDate != "" {
		if _, err := c.parseDate(c.Generation.StartDate); err != nil {
			return fmt.Errorf("generation start_date invalid: %w", err)
		}
	}
	if c.Generation.EndDate != "" {
		if _, err := c.parseDate(c.Generation.EndDate); err != nil {
			return fmt.Errorf("generation end_date invalid: %w", err)
		}
	}
	if c.Generation.Workers < 0 {
		return errors.New("generation workers must be >= 0")
	}
	for name, p := range c.Profiles {
		if !knownTypeName(name) {
			return fmt.Errorf("unknown profile type %q", name)
		}
		if p.BaseCoefficient < 0 || p.PeakMultiplier < 0 || p.WeekendFactor < 0 || p.ClimateSensitivity < 0 {
			return fmt.Errorf("profile %q: factors must be >= 0", name)
		}
		if p.OperatingStart != nil && (*p.OperatingStart < 0 || *p.OperatingStart > 23) {
			return fmt.Errorf("profile %q: operating_start out of range 0..23", name)
		}
		if p.OperatingEnd != nil && (*p.OperatingEnd < 0 || *p.OperatingEnd > 23) {
			return fmt.Errorf("profile %q: operating_end out of range 0..23", name)
		}
	}
	return nil
}

func knownTypeName(name string) bool {
	switch model.BuildingType(name) {
	case model.TypeResidential, model.TypeCommercial, model.TypeOffice,
		model.TypeIndustrial, model.TypeHospital, model.TypeSchool,
		model.TypeHotel, model.TypeWarehouse:
		return true
	}
	return false
}

func (c *Config) parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, model.MalaysiaTime())
}

// StartTime returns the configured start date at midnight Malaysia time.
func (c *Config) StartTime() (time.Time, error) {
	return c.parseDate(c.Generation.StartDate)
}

// EndTime returns the configured end date at the last second of the day, so
// a one-day range yields a full day of samples at any frequency.
func (c *Config) EndTime() (time.Time, error) {
	t, err := c.parseDate(c.Generation.EndDate)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Second), nil
}

// BuildProfiles overlays the configured profile tweaks onto the built-in
// table.
func (c *Config) BuildProfiles() model.Profiles {
	profiles := model.DefaultProfiles()
	for name, override := range c.Profiles {
		t := model.BuildingType(name)
		base, ok := profiles[t]
		if !ok {
			continue
		}
		profiles[t] = MergeProfile(base, override)
	}
	return profiles
}

// MergeProfile overlays non-zero fields from override onto base.
func MergeProfile(base model.Profile, override ProfileConfig) model.Profile {
	out := base
	if override.BaseCoefficient != 0 {
		out.BaseCoefficient = override.BaseCoefficient
	}
	if override.PeakMultiplier != 0 {
		out.PeakMultiplier = override.PeakMultiplier
	}
	if override.WeekendFactor != 0 {
		out.WeekendFactor = override.WeekendFactor
	}
	if override.ClimateSensitivity != 0 {
		out.ClimateSensitivity = override.ClimateSensitivity
	}
	if override.OperatingStart != nil {
		out.OperatingStart = *override.OperatingStart
	}
	if override.OperatingEnd != nil {
		out.OperatingEnd = *override.OperatingEnd
	}
	if override.WeekendsActive != nil {
		out.WeekendsActive = *override.WeekendsActive
	}
	return out
}

// MonsoonMonths returns the configured monsoon set, or nil when the default
// applies.
func (c *Config) MonsoonMonths() []int { return c.Climate.MonsoonMonths }

// DryMonths returns the configured dry set, or nil when the default applies.
func (c *Config) DryMonths() []int { return c.Climate.DryMonths }
