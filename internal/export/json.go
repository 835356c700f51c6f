package export

import (
	"encoding/json"
	"fmt"
	"os"

	"malaysia-energy-synth/internal/generator"
	"malaysia-energy-synth/internal/model"
)

// WriteObservationsJSON writes the observation table as an indented JSON
// array.
func WriteObservationsJSON(path string, observations []model.Observation) error {
	return writeJSON(path, observations)
}

// WriteBuildingsJSON writes the building metadata table as an indented JSON
// array.
func WriteBuildingsJSON(path string, meta []generator.BuildingMetadata) error {
	return writeJSON(path, meta)
}

func writeJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
