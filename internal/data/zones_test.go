package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookup(t *testing.T) {
	catalog := DefaultCatalog()

	z, ok := catalog.Lookup("kuala_lumpur")
	require.True(t, ok)
	assert.Equal(t, "Kuala Lumpur", z.State)

	z, ok = catalog.Lookup("KUALA_LUMPUR")
	require.True(t, ok)
	assert.Equal(t, "kuala_lumpur", z.Name)

	_, ok = catalog.Lookup("atlantis")
	assert.False(t, ok)
}

func TestCatalogLocate(t *testing.T) {
	catalog := DefaultCatalog()

	z, ok := catalog.Locate(3.15, 101.7)
	require.True(t, ok)
	assert.Equal(t, "kuala_lumpur", z.Name)

	// Inside the country box but outside every city.
	z, ok = catalog.Locate(4.0, 103.0)
	require.True(t, ok)
	assert.Equal(t, "malaysia", z.Name)

	_, ok = catalog.Locate(40.0, 103.0)
	assert.False(t, ok)
}

func TestZoneFileShadowsBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.json")
	raw := `[
		{"name": "kuala_lumpur", "state": "Override", "min_lat": 3.0, "max_lat": 3.4, "min_lon": 101.5, "max_lon": 101.9},
		{"name": "putrajaya", "state": "Putrajaya", "min_lat": 2.88, "max_lat": 2.98, "min_lon": 101.63, "max_lon": 101.73}
	]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	src, err := LoadZoneFile(path)
	require.NoError(t, err)
	catalog := NewCatalog(src, BuiltinZones(), DefaultZone())

	z, ok := catalog.Lookup("kuala_lumpur")
	require.True(t, ok)
	assert.Equal(t, "Override", z.State)

	z, ok = catalog.Lookup("putrajaya")
	require.True(t, ok)
	assert.Equal(t, "Putrajaya", z.State)

	// Other built-ins still resolve.
	_, ok = catalog.Lookup("kuching")
	assert.True(t, ok)

	// First definition wins in the merged listing.
	var klCount int
	for _, z := range catalog.Zones() {
		if z.Name == "kuala_lumpur" {
			klCount++
			assert.Equal(t, "Override", z.State)
		}
	}
	assert.Equal(t, 1, klCount)
}

func TestLoadZoneFileErrors(t *testing.T) {
	_, err := LoadZoneFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadZoneFile(path)
	assert.Error(t, err)
}

func TestZoneContains(t *testing.T) {
	z := Zone{MinLat: 1.0, MaxLat: 2.0, MinLon: 100.0, MaxLon: 101.0}
	assert.True(t, z.Contains(1.5, 100.5))
	assert.True(t, z.Contains(1.0, 100.0))
	assert.False(t, z.Contains(2.1, 100.5))
	assert.False(t, z.Contains(1.5, 99.9))
}
