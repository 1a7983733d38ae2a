package boiler

import "fmt"

// Metrics aggregates statistics about a closed-loop run for final
// reporting. Useful for evaluating controller behavior and debugging
// scenarios over time.
type Metrics struct {
	Cycles              int // control cycles executed
	OpenCommands        int // open-pump commands emitted
	CloseCommands       int // close-pump commands emitted
	ValveCommands       int // relief valve commands emitted
	StopCommands        int // stop commands emitted
	ModeAnnouncements   int // mode announcements emitted
	LevelFailures       int // level sensor failure announcements
	SteamFailures       int // steam sensor failure announcements
	PumpFailures        int // pump failure announcements
	PumpControlFailures int // pump controller failure announcements
	ModeTransitions     int // distinct operating mode changes observed
	FinalMode           OperatingMode

	lastMode OperatingMode
	seeded   bool
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveCycle folds one cycle's outlet and the resulting mode into the
// counters.
func (m *Metrics) ObserveCycle(outlet *Mailbox, mode OperatingMode) {
	m.Cycles++
	for _, msg := range outlet.Messages() {
		switch msg.Kind {
		case KindOpenPump:
			m.OpenCommands++
		case KindClosePump:
			m.CloseCommands++
		case KindValve:
			m.ValveCommands++
		case KindStop:
			m.StopCommands++
		case KindMode:
			m.ModeAnnouncements++
		case KindLevelFailure:
			m.LevelFailures++
		case KindSteamFailure:
			m.SteamFailures++
		case KindPumpFailure:
			m.PumpFailures++
		case KindPumpControlFailure:
			m.PumpControlFailures++
		}
	}
	if m.seeded && mode != m.lastMode {
		m.ModeTransitions++
	}
	m.lastMode = mode
	m.seeded = true
	m.FinalMode = mode
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Run Metrics ===")
	fmt.Printf("Cycles                : %d\n", m.Cycles)
	fmt.Printf("Final Mode            : %s\n", m.FinalMode)
	fmt.Printf("Mode Transitions      : %d\n", m.ModeTransitions)
	fmt.Printf("Open Pump Commands    : %d\n", m.OpenCommands)
	fmt.Printf("Close Pump Commands   : %d\n", m.CloseCommands)
	fmt.Printf("Valve Commands        : %d\n", m.ValveCommands)
	fmt.Printf("Stop Commands         : %d\n", m.StopCommands)
	fmt.Printf("Mode Announcements    : %d\n", m.ModeAnnouncements)
	fmt.Printf("Failure Announcements : level=%d steam=%d pump=%d pump-control=%d\n",
		m.LevelFailures, m.SteamFailures, m.PumpFailures, m.PumpControlFailures)
}
