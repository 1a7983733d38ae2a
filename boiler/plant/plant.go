// Package plant simulates the physical units of the steam boiler: the
// vessel, the pumps with their controllers, the relief valve and the level
// and steam sensors. It exists so the decision core can be exercised in a
// closed loop without hardware; the core itself never imports it.
package plant

import (
	"github.com/sirupsen/logrus"

	"github.com/boiler-sim/boiler-sim/boiler"
)

// Plant holds the true physical state of the simulated boiler. Reported
// sensor values can diverge from it once faults are injected.
type Plant struct {
	cfg boiler.PlantCharacteristics

	level       float64 // true water level
	steam       float64 // true steam output rate
	steamTarget float64 // rate the boiler ramps toward once running

	pumpOpen []bool
	valve    bool // relief valve drains this cycle
	stopped  bool

	programReady   bool // controller reported program-ready
	unitsReadySent bool

	faults faultState
}

// New builds a plant at the given initial level. Steam output stays at zero
// until the controller reports program-ready, then ramps toward steamTarget.
func New(cfg boiler.PlantCharacteristics, initialLevel, steamTarget float64) *Plant {
	return &Plant{
		cfg:         cfg,
		level:       initialLevel,
		steamTarget: steamTarget,
		pumpOpen:    make([]bool, cfg.PumpCount()),
		faults:      newFaultState(cfg.PumpCount()),
	}
}

// Level reports the true water level.
func (p *Plant) Level() float64 { return p.level }

// Steam reports the true steam output rate.
func (p *Plant) Steam() float64 { return p.steam }

// Stopped reports whether a stop command has frozen the plant.
func (p *Plant) Stopped() bool { return p.stopped }

// PumpOpen reports the true state of pump i.
func (p *Plant) PumpOpen(i int) bool { return p.pumpOpen[i] }

// EmitReadings writes this cycle's sensor readings and handshake signals
// into the controller's inbox, applying any injected sensor faults.
func (p *Plant) EmitReadings(inbox *boiler.Mailbox) {
	if !p.faults.dropLevel {
		reported := p.level
		if p.faults.levelStuck {
			reported = p.faults.levelStuckValue
		}
		inbox.Send(boiler.LevelReading(reported))
		if p.faults.duplicateLevel {
			inbox.Send(boiler.LevelReading(reported))
		}
	}
	steam := p.steam
	if p.faults.steamBroken {
		steam = p.faults.steamBrokenValue
	}
	inbox.Send(boiler.SteamReading(steam))

	for i, open := range p.pumpOpen {
		reportedPump := open
		if p.faults.pumpSensorLying[i] {
			reportedPump = !open
		}
		reportedControl := open
		if p.faults.controlSensorLying[i] {
			reportedControl = !open
		}
		inbox.Send(boiler.PumpStateReading(i, reportedPump))
		inbox.Send(boiler.PumpControlStateReading(i, reportedControl))
	}

	if !p.programReady {
		inbox.Send(boiler.Message{Kind: boiler.KindBoilerWaiting})
	} else if !p.unitsReadySent {
		inbox.Send(boiler.Message{Kind: boiler.KindUnitsReady})
		p.unitsReadySent = true
	}
}

// Apply executes the controller's outlet against the physical units. Stuck
// pumps ignore their commands; a stop command freezes the plant for good.
func (p *Plant) Apply(outlet *boiler.Mailbox) {
	for _, m := range outlet.Messages() {
		switch m.Kind {
		case boiler.KindOpenPump:
			if !p.faults.pumpStuck[m.Pump] {
				p.pumpOpen[m.Pump] = true
			}
		case boiler.KindClosePump:
			if !p.faults.pumpStuck[m.Pump] {
				p.pumpOpen[m.Pump] = false
			}
		case boiler.KindValve:
			p.valve = true
		case boiler.KindStop:
			logrus.Info("plant: stop command received, freezing")
			p.stopped = true
		case boiler.KindProgramReady:
			p.programReady = true
		}
	}
}

// Advance integrates the physical dynamics over one cycle: open pumps add
// water, steam production removes it, the relief valve drains one pump's
// cycle volume and closes again. A stopped plant no longer moves.
func (p *Plant) Advance() {
	if p.stopped {
		return
	}

	inflow := 0.0
	for i, open := range p.pumpOpen {
		if open {
			inflow += p.cfg.PumpCapacity(i)
		}
	}
	drain := 0.0
	if p.valve {
		drain = boiler.CycleDuration * p.cfg.PumpCapacity(0)
		p.valve = false
	}

	p.level += boiler.CycleDuration*inflow - boiler.CycleDuration*p.steam - drain
	if p.level < 0 {
		p.level = 0
	}
	if p.level > p.cfg.Capacity {
		p.level = p.cfg.Capacity
	}

	// Steam only builds once the program is running, slewing toward the
	// target a quarter of the maximum rate per cycle.
	if p.programReady {
		step := p.cfg.MaximumSteamRate / 4
		switch {
		case p.steam+step < p.steamTarget:
			p.steam += step
		case p.steam > p.steamTarget:
			p.steam = p.steamTarget
		default:
			p.steam = p.steamTarget
		}
		if p.steam > p.cfg.MaximumSteamRate {
			p.steam = p.cfg.MaximumSteamRate
		}
	}

	logrus.Debugf("plant: level=%.2f steam=%.2f pumps=%v", p.level, p.steam, p.pumpOpen)
}
