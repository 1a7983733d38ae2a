// Package scenario describes closed-loop runs as YAML files: how long to
// run, where the water starts, how hard the boiler fires, and which unit
// failures to inject at which cycle.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boiler-sim/boiler-sim/boiler/plant"
)

// Injection schedules one fault for a specific cycle.
type Injection struct {
	Cycle int             `yaml:"cycle"`
	Kind  plant.FaultKind `yaml:"kind"`
	Pump  int             `yaml:"pump"`
	Value float64         `yaml:"value"`
}

// Fault converts the injection into the plant's fault description.
func (in Injection) Fault() plant.Fault {
	return plant.Fault{Kind: in.Kind, Pump: in.Pump, Value: in.Value}
}

// Scenario is one closed-loop run description, loadable from a YAML file.
type Scenario struct {
	Cycles       int         `yaml:"cycles"`
	InitialLevel float64     `yaml:"initialLevel"`
	SteamTarget  float64     `yaml:"steamTarget"`
	Faults       []Injection `yaml:"faults"`
}

// ValidFaultKinds is the set of recognized fault kind names. Shared by
// Validate and documentation so the two cannot drift.
var ValidFaultKinds = map[plant.FaultKind]bool{
	plant.FaultPumpStuck:             true,
	plant.FaultPumpSensorLying:       true,
	plant.FaultControlSensorLying:    true,
	plant.FaultLevelSensorStuck:      true,
	plant.FaultSteamSensorBroken:     true,
	plant.FaultDropLevelReading:      true,
	plant.FaultDuplicateLevelReading: true,
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks the scenario against the given pump count.
func (s *Scenario) Validate(pumpCount int) error {
	if s.Cycles <= 0 {
		return fmt.Errorf("cycles must be positive, got %d", s.Cycles)
	}
	if s.InitialLevel < 0 {
		return fmt.Errorf("initialLevel must be non-negative, got %f", s.InitialLevel)
	}
	if s.SteamTarget < 0 {
		return fmt.Errorf("steamTarget must be non-negative, got %f", s.SteamTarget)
	}
	for i, f := range s.Faults {
		if !ValidFaultKinds[f.Kind] {
			return fmt.Errorf("fault %d: unknown kind %q", i, f.Kind)
		}
		if f.Cycle < 0 {
			return fmt.Errorf("fault %d: cycle must be non-negative, got %d", i, f.Cycle)
		}
		switch f.Kind {
		case plant.FaultPumpStuck, plant.FaultPumpSensorLying, plant.FaultControlSensorLying:
			if f.Pump < 0 || f.Pump >= pumpCount {
				return fmt.Errorf("fault %d: pump index %d out of range [0, %d)", i, f.Pump, pumpCount)
			}
		}
	}
	return nil
}

// FaultsAt returns the faults scheduled for the given cycle.
func (s *Scenario) FaultsAt(cycle int) []plant.Fault {
	var faults []plant.Fault
	for _, f := range s.Faults {
		if f.Cycle == cycle {
			faults = append(faults, f.Fault())
		}
	}
	return faults
}
