package boiler

import (
	"math"

	"github.com/sirupsen/logrus"
)

// turnPumpsOnOff is the binary toggle rule: when the driving estimate sits
// at or below half capacity, open the lowest-indexed pump reported closed;
// above half capacity, close the lowest-indexed pump reported open. At most
// one pump changes state per call.
func (c *Controller) turnPumpsOnOff(outgoing *Mailbox, drive float64, pumpStates []Message) {
	if drive <= c.cfg.Capacity/2 {
		for i, m := range pumpStates {
			if !m.Open {
				logrus.Debugf("toggle: drive %.2f below half capacity, opening pump %d", drive, i)
				c.lastPumpState[i] = true
				outgoing.Send(OpenPump(i))
				return
			}
		}
		return
	}
	for i, m := range pumpStates {
		if m.Open {
			logrus.Debugf("toggle: drive %.2f above half capacity, closing pump %d", drive, i)
			c.lastPumpState[i] = false
			outgoing.Send(ClosePump(i))
			return
		}
	}
}

// pumpsToOpen is the degraded-mode compensation search: over candidate pump
// counts 0..pumpCount it predicts the next-cycle level average assuming that
// many uniform-capacity pumps run, and picks the count whose prediction
// lands closest to the midpoint of the normal band. The winning prediction
// is retained as the controller's predicted water level.
func (c *Controller) pumpsToOpen(level, steam float64) int {
	target := c.cfg.NormalBandMidpoint()
	best := 0
	bestDistance := math.MaxFloat64
	for n := 0; n <= c.cfg.PumpCount(); n++ {
		predicted := (c.pumpCountMinLevel(level, n) + c.pumpCountMaxLevel(level, steam, n)) / 2
		if d := math.Abs(target - predicted); d < bestDistance {
			best = n
			bestDistance = d
			c.predictedWaterLevel = predicted
		}
	}
	logrus.Debugf("compensation: %d pumps, predicted level %.2f (target %.2f)",
		best, c.predictedWaterLevel, target)
	return best
}

// openCompensatingPumps opens count pumps in index order, skipping the
// failed index when one is flagged.
func (c *Controller) openCompensatingPumps(outgoing *Mailbox, count int) {
	for i := 0; i < c.cfg.PumpCount() && count > 0; i++ {
		if i == c.failedPump {
			continue
		}
		c.lastPumpState[i] = true
		outgoing.Send(OpenPump(i))
		count--
	}
}
