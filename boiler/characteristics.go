package boiler

import "fmt"

// PlantCharacteristics is the immutable description of the physical plant,
// supplied once at start-up. Levels and the capacity share a unit (litres);
// pump capacities and the steam rate are volumes per time unit.
type PlantCharacteristics struct {
	Capacity           float64   `yaml:"capacity"`
	MinimalLimitLevel  float64   `yaml:"minimalLimitLevel"`
	MaximalLimitLevel  float64   `yaml:"maximalLimitLevel"`
	MinimalNormalLevel float64   `yaml:"minimalNormalLevel"`
	MaximalNormalLevel float64   `yaml:"maximalNormalLevel"`
	MaximumSteamRate   float64   `yaml:"maximumSteamRate"`
	PumpCapacities     []float64 `yaml:"pumpCapacities"`
}

// PumpCount reports the number of pumps attached to the plant.
func (pc PlantCharacteristics) PumpCount() int { return len(pc.PumpCapacities) }

// PumpCapacity reports the throughput of pump i.
func (pc PlantCharacteristics) PumpCapacity(i int) float64 { return pc.PumpCapacities[i] }

// UniformPumpCapacity is the capacity assumed for every pump by the
// degraded-mode compensation search. It is pump index 1's capacity, falling
// back to pump 0 on single-pump plants.
func (pc PlantCharacteristics) UniformPumpCapacity() float64 {
	if len(pc.PumpCapacities) > 1 {
		return pc.PumpCapacities[1]
	}
	return pc.PumpCapacities[0]
}

// NormalBandMidpoint is the target level for degraded-mode compensation.
func (pc PlantCharacteristics) NormalBandMidpoint() float64 {
	return (pc.MinimalNormalLevel + pc.MaximalNormalLevel) / 2
}

// Validate checks structural plausibility of the characteristics.
func (pc PlantCharacteristics) Validate() error {
	if pc.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %f", pc.Capacity)
	}
	if len(pc.PumpCapacities) == 0 {
		return fmt.Errorf("at least one pump is required")
	}
	for i, cap := range pc.PumpCapacities {
		if cap <= 0 {
			return fmt.Errorf("pump %d capacity must be positive, got %f", i, cap)
		}
	}
	if pc.MaximumSteamRate <= 0 {
		return fmt.Errorf("maximum steam rate must be positive, got %f", pc.MaximumSteamRate)
	}
	if pc.MinimalNormalLevel >= pc.MaximalNormalLevel {
		return fmt.Errorf("normal band [%f, %f] is inverted or empty",
			pc.MinimalNormalLevel, pc.MaximalNormalLevel)
	}
	if pc.MinimalLimitLevel >= pc.MaximalLimitLevel {
		return fmt.Errorf("limit band [%f, %f] is inverted or empty",
			pc.MinimalLimitLevel, pc.MaximalLimitLevel)
	}
	if pc.MinimalLimitLevel > pc.MinimalNormalLevel || pc.MaximalNormalLevel > pc.MaximalLimitLevel {
		return fmt.Errorf("normal band [%f, %f] must sit inside limit band [%f, %f]",
			pc.MinimalNormalLevel, pc.MaximalNormalLevel, pc.MinimalLimitLevel, pc.MaximalLimitLevel)
	}
	if pc.MaximalLimitLevel > pc.Capacity {
		return fmt.Errorf("maximal limit level %f exceeds capacity %f", pc.MaximalLimitLevel, pc.Capacity)
	}
	return nil
}
