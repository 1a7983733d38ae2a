package boiler

// OperatingMode captures the mutually exclusive modes the controller can
// operate in. WAITING is the initial mode; EMERGENCY_STOP is terminal.
//
// Reachability: WAITING → READY → NORMAL form the nominal progression, and
// DEGRADED, RESCUE and EMERGENCY_STOP are reachable from any mode once a
// fault is detected.
type OperatingMode int

const (
	ModeWaiting OperatingMode = iota
	ModeReady
	ModeNormal
	ModeDegraded
	ModeRescue
	ModeEmergencyStop
)

var modeNames = map[OperatingMode]string{
	ModeWaiting:       "WAITING",
	ModeReady:         "READY",
	ModeNormal:        "NORMAL",
	ModeDegraded:      "DEGRADED",
	ModeRescue:        "RESCUE",
	ModeEmergencyStop: "EMERGENCY_STOP",
}

func (m OperatingMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// Terminal reports whether the mode admits no further transitions.
func (m OperatingMode) Terminal() bool { return m == ModeEmergencyStop }
