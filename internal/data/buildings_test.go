package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuildingRecordsBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildings.json")
	raw := `[
		{"latitude": 3.1, "longitude": 101.7, "building_type": "residential", "surface_area_m2": 150},
		{"latitude": 3.2, "longitude": 101.8, "building_type": "office", "surface_area_m2": 2000, "floors": 12}
	]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	records, err := LoadBuildingRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "office", records[1].BuildingType)
	assert.Equal(t, 12, records[1].Floors)
}

func TestLoadBuildingRecordsWrappedObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildings.json")
	raw := `{"buildings": [{"latitude": 3.1, "longitude": 101.7, "building_type": "hotel", "surface_area_m2": 500}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	records, err := LoadBuildingRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hotel", records[0].BuildingType)
}

func TestLoadBuildingRecordsErrors(t *testing.T) {
	_, err := LoadBuildingRecords(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))
	_, err = LoadBuildingRecords(path)
	assert.Error(t, err)
}
