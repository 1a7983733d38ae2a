package boiler

import "github.com/sirupsen/logrus"

// activePumpOutput sums the capacities of pumps currently reported open.
func (c *Controller) activePumpOutput(pumpStates []Message) float64 {
	output := 0.0
	for _, m := range pumpStates {
		if m.Open {
			output += c.cfg.PumpCapacity(m.Pump)
		}
	}
	return output
}

// checkPumpStatus flags a pump failure wherever the last-commanded state
// disagrees with both the reported pump state and the reported controller
// state. Each flagged pump overwrites failedPump, so with simultaneous
// failures only the highest index survives (single-fault assumption).
func (c *Controller) checkPumpStatus(pumpStates, controlStates []Message, outgoing *Mailbox) {
	for i := range c.lastPumpState {
		if c.lastPumpState[i] != pumpStates[i].Open && c.lastPumpState[i] != controlStates[i].Open {
			logrus.Warnf("pump %d disagrees with last command (commanded open=%t)", i, c.lastPumpState[i])
			c.failedPump = i
			c.mode = ModeDegraded
			outgoing.Send(PumpFailureDetected(i))
			outgoing.Send(ModeAnnouncement(ModeDegraded))
		}
	}
}

// checkControlStatus flags a pump-controller failure wherever the
// last-commanded state disagrees with the reported controller state. The
// reported pump state is deliberately not consulted: a genuine pump failure
// therefore also raises a controller announcement, matching the fail-loud
// posture of the detector.
func (c *Controller) checkControlStatus(controlStates []Message, outgoing *Mailbox) {
	for i := range c.lastPumpState {
		if c.lastPumpState[i] != controlStates[i].Open {
			logrus.Warnf("pump controller %d disagrees with last command (commanded open=%t)",
				i, c.lastPumpState[i])
			c.mode = ModeDegraded
			outgoing.Send(PumpControlFailureDetected(i))
			outgoing.Send(ModeAnnouncement(ModeDegraded))
		}
	}
}

// checkControlStatusStrict is the re-validation variant used once a cycle
// already starts degraded: a controller that still cannot corroborate the
// last command is grounds for an emergency stop, since degraded operation
// leans on the controllers to supervise the surviving pumps. The pump
// already flagged as failed is exempt, its controller mismatch is already
// accounted for.
func (c *Controller) checkControlStatusStrict(controlStates []Message, outgoing *Mailbox) {
	for i := range c.lastPumpState {
		if i == c.failedPump {
			continue
		}
		if c.lastPumpState[i] != controlStates[i].Open {
			logrus.Warnf("pump controller %d failed re-validation, stopping", i)
			outgoing.Send(PumpControlFailureDetected(i))
			c.emergencyStop(outgoing)
		}
	}
}
