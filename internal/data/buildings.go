package data

import (
	"encoding/json"
	"fmt"
	"os"

	"malaysia-energy-synth/internal/model"
)

// buildingFile accepts either a bare JSON array of records or an object
// wrapping one under "buildings".
type buildingFile struct {
	Buildings []model.BuildingRecord `json:"buildings"`
}

// LoadBuildingRecords reads a building list from a JSON file.
func LoadBuildingRecords(path string) ([]model.BuildingRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buildings file: %w", err)
	}

	var records []model.BuildingRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var wrapped buildingFile
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse buildings file: %w", err)
	}
	return wrapped.Buildings, nil
}
