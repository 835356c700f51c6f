// Package data provides static input data: the Malaysian zone catalog and
// the building-list file loader.
package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Zone is a named Malaysian area with its bounding box.
type Zone struct {
	Name               string  `json:"name"`
	State              string  `json:"state,omitempty"`
	MinLat             float64 `json:"min_lat"`
	MaxLat             float64 `json:"max_lat"`
	MinLon             float64 `json:"min_lon"`
	MaxLon             float64 `json:"max_lon"`
	EstimatedBuildings int     `json:"estimated_buildings,omitempty"`
}

// Contains reports whether the coordinate falls inside the zone's box.
func (z Zone) Contains(lat, lon float64) bool {
	return lat >= z.MinLat && lat <= z.MaxLat && lon >= z.MinLon && lon <= z.MaxLon
}

// Source is one zone lookup source.
type Source interface {
	Lookup(name string) (Zone, bool)
	Zones() []Zone
}

// Catalog queries its sources in priority order and returns the first match.
// Typical order: explicit zone file, then built-ins, then the country-wide
// default.
type Catalog struct {
	sources []Source
}

func NewCatalog(sources ...Source) *Catalog {
	return &Catalog{sources: sources}
}

// DefaultCatalog is built-ins backed by the country-wide fallback.
func DefaultCatalog() *Catalog {
	return NewCatalog(BuiltinZones(), DefaultZone())
}

// Lookup resolves a zone name through the source chain.
func (c *Catalog) Lookup(name string) (Zone, bool) {
	for _, s := range c.sources {
		if z, ok := s.Lookup(name); ok {
			return z, true
		}
	}
	return Zone{}, false
}

// Locate returns the first zone whose bounding box contains the coordinate.
func (c *Catalog) Locate(lat, lon float64) (Zone, bool) {
	for _, s := range c.sources {
		for _, z := range s.Zones() {
			if z.Contains(lat, lon) {
				return z, true
			}
		}
	}
	return Zone{}, false
}

// Zones lists all zones in priority order, first definition of a name wins.
func (c *Catalog) Zones() []Zone {
	seen := map[string]bool{}
	var out []Zone
	for _, s := range c.sources {
		for _, z := range s.Zones() {
			key := strings.ToLower(z.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, z)
		}
	}
	return out
}

type listSource struct {
	zones []Zone
}

func (s *listSource) Lookup(name string) (Zone, bool) {
	for _, z := range s.zones {
		if strings.EqualFold(z.Name, name) {
			return z, true
		}
	}
	return Zone{}, false
}

func (s *listSource) Zones() []Zone { return s.zones }

// LoadZoneFile reads a JSON zone list to use as the highest-priority source.
func LoadZoneFile(path string) (Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zone file: %w", err)
	}
	var zones []Zone
	if err := json.Unmarshal(raw, &zones); err != nil {
		return nil, fmt.Errorf("failed to parse zone file: %w", err)
	}
	return &listSource{zones: zones}, nil
}

// BuiltinZones returns the bundled city catalog.
func BuiltinZones() Source {
	return &listSource{zones: []Zone{
		{Name: "kuala_lumpur", State: "Kuala Lumpur", MinLat: 3.0, MaxLat: 3.3, MinLon: 101.6, MaxLon: 101.8, EstimatedBuildings: 150000},
		{Name: "george_town", State: "Penang", MinLat: 5.3, MaxLat: 5.5, MinLon: 100.2, MaxLon: 100.4, EstimatedBuildings: 60000},
		{Name: "ipoh", State: "Perak", MinLat: 4.5, MaxLat: 4.7, MinLon: 101.0, MaxLon: 101.2, EstimatedBuildings: 45000},
		{Name: "johor_bahru", State: "Johor", MinLat: 1.4, MaxLat: 1.6, MinLon: 103.6, MaxLon: 103.9, EstimatedBuildings: 80000},
		{Name: "shah_alam", State: "Selangor", MinLat: 3.0, MaxLat: 3.2, MinLon: 101.4, MaxLon: 101.6, EstimatedBuildings: 55000},
		{Name: "kota_kinabalu", State: "Sabah", MinLat: 5.9, MaxLat: 6.1, MinLon: 116.0, MaxLon: 116.2, EstimatedBuildings: 30000},
		{Name: "kuching", State: "Sarawak", MinLat: 1.5, MaxLat: 1.7, MinLon: 110.3, MaxLon: 110.5, EstimatedBuildings: 35000},
	}}
}

// DefaultZone is the country-wide fallback matched when nothing narrower
// does.
func DefaultZone() Source {
	return &listSource{zones: []Zone{
		{Name: "malaysia", MinLat: 0.5, MaxLat: 7.5, MinLon: 99.0, MaxLon: 120.0},
	}}
}
