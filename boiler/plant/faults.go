package plant

import "github.com/sirupsen/logrus"

// FaultKind names an injectable unit failure. Faults are persistent: once
// injected they hold for the rest of the run.
type FaultKind string

const (
	// FaultPumpStuck makes a pump ignore open/close commands.
	FaultPumpStuck FaultKind = "pump-stuck"
	// FaultPumpSensorLying inverts a pump's reported state.
	FaultPumpSensorLying FaultKind = "pump-sensor-lying"
	// FaultControlSensorLying inverts a pump controller's reported state.
	FaultControlSensorLying FaultKind = "pump-control-sensor-lying"
	// FaultLevelSensorStuck pins the reported level at a fixed value.
	FaultLevelSensorStuck FaultKind = "level-sensor-stuck"
	// FaultSteamSensorBroken pins the reported steam rate at a fixed value.
	FaultSteamSensorBroken FaultKind = "steam-sensor-broken"
	// FaultDropLevelReading suppresses the level reading entirely.
	FaultDropLevelReading FaultKind = "drop-level-reading"
	// FaultDuplicateLevelReading sends the level reading twice.
	FaultDuplicateLevelReading FaultKind = "duplicate-level-reading"
)

// Fault describes one injection: the kind plus the payload fields it needs
// (Pump for per-pump faults, Value for pinned sensor readings).
type Fault struct {
	Kind  FaultKind
	Pump  int
	Value float64
}

type faultState struct {
	pumpStuck          []bool
	pumpSensorLying    []bool
	controlSensorLying []bool
	levelStuck         bool
	levelStuckValue    float64
	steamBroken        bool
	steamBrokenValue   float64
	dropLevel          bool
	duplicateLevel     bool
}

func newFaultState(pumpCount int) faultState {
	return faultState{
		pumpStuck:          make([]bool, pumpCount),
		pumpSensorLying:    make([]bool, pumpCount),
		controlSensorLying: make([]bool, pumpCount),
	}
}

// Inject activates a fault on the plant.
func (p *Plant) Inject(f Fault) {
	logrus.Warnf("plant: injecting fault %s (pump=%d value=%.2f)", f.Kind, f.Pump, f.Value)
	switch f.Kind {
	case FaultPumpStuck:
		p.faults.pumpStuck[f.Pump] = true
	case FaultPumpSensorLying:
		p.faults.pumpSensorLying[f.Pump] = true
	case FaultControlSensorLying:
		p.faults.controlSensorLying[f.Pump] = true
	case FaultLevelSensorStuck:
		p.faults.levelStuck = true
		p.faults.levelStuckValue = f.Value
	case FaultSteamSensorBroken:
		p.faults.steamBroken = true
		p.faults.steamBrokenValue = f.Value
	case FaultDropLevelReading:
		p.faults.dropLevel = true
	case FaultDuplicateLevelReading:
		p.faults.duplicateLevel = true
	}
}
