package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boiler-sim/boiler-sim/boiler"
)

// DefaultCharacteristics describes the reference two-pump plant used when no
// characteristics file is supplied: a 1000 litre vessel with a 400–600
// normal band inside 200–900 limit levels.
func DefaultCharacteristics() boiler.PlantCharacteristics {
	return boiler.PlantCharacteristics{
		Capacity:           1000,
		MinimalLimitLevel:  200,
		MaximalLimitLevel:  900,
		MinimalNormalLevel: 400,
		MaximalNormalLevel: 600,
		MaximumSteamRate:   10,
		PumpCapacities:     []float64{10, 10},
	}
}

// LoadCharacteristics reads and parses a YAML plant characteristics file.
func LoadCharacteristics(path string) (*boiler.PlantCharacteristics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plant characteristics: %w", err)
	}
	var cfg boiler.PlantCharacteristics
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing plant characteristics: %w", err)
	}
	return &cfg, nil
}
