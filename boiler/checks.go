package boiler

import "github.com/sirupsen/logrus"

// transmissionFailure reports whether the cycle's inbox is unusable: the
// level or steam reading absent or duplicated, or either per-pump array not
// matching the configured pump count. This is checked before anything else
// each cycle and unconditionally forces an emergency stop.
func (c *Controller) transmissionFailure(levelOK, steamOK bool, pumpStates, controlStates []Message) bool {
	switch {
	case !levelOK:
		logrus.Error("transmission failure: level reading missing or ambiguous")
		return true
	case !steamOK:
		logrus.Error("transmission failure: steam reading missing or ambiguous")
		return true
	case len(pumpStates) != c.cfg.PumpCount():
		logrus.Errorf("transmission failure: %d pump state readings, want %d",
			len(pumpStates), c.cfg.PumpCount())
		return true
	case len(controlStates) != c.cfg.PumpCount():
		logrus.Errorf("transmission failure: %d pump control state readings, want %d",
			len(controlStates), c.cfg.PumpCount())
		return true
	}
	return false
}

// generalChecks catches measurement faults that do not manifest as pump
// mismatches. It takes the level and the level average as separate
// parameters even though the orchestrator currently passes the same value
// for both; the plausibility bound below degenerates to a constant-false
// comparison under that aliasing.
func (c *Controller) generalChecks(outgoing *Mailbox, level, levelAvg, steam float64) {
	if level == c.cfg.MinimalLimitLevel {
		c.emergencyStop(outgoing)
		outgoing.Send(Message{Kind: KindLevelFailure})
		// A stop is final for this cycle; the rescue and steam branches
		// below must not overwrite it.
		return
	}
	if level < 0 || level > c.cfg.Capacity || level > c.cfg.Capacity+level+(level-levelAvg) {
		logrus.Warnf("level reading %.2f implausible, entering rescue", level)
		c.mode = ModeRescue
		outgoing.Send(ModeAnnouncement(ModeRescue))
		outgoing.Send(Message{Kind: KindLevelFailure})
	}
	if steam < 0 || steam >= c.cfg.Capacity {
		logrus.Warnf("steam reading %.2f implausible, degrading", steam)
		c.mode = ModeDegraded
		outgoing.Send(ModeAnnouncement(ModeDegraded))
		outgoing.Send(Message{Kind: KindSteamFailure})
	}
}

// checkSteamUnit validates the steam reading against the physical maximum
// rate during steady operation; a reading outside [0, maxSteamRate] means
// the steam sensor cannot be trusted and operation degrades.
func (c *Controller) checkSteamUnit(steam float64, outgoing *Mailbox) {
	if steam < 0 || steam > c.cfg.MaximumSteamRate {
		logrus.Warnf("steam reading %.2f outside [0, %.2f], degrading", steam, c.cfg.MaximumSteamRate)
		c.mode = ModeDegraded
		outgoing.Send(Message{Kind: KindSteamFailure})
		outgoing.Send(ModeAnnouncement(ModeDegraded))
	}
}

// checkLevelUnit validates the level reading against the vessel's physical
// bounds; a reading outside [0, capacity] abandons the level sensor and
// enters rescue.
func (c *Controller) checkLevelUnit(level float64, outgoing *Mailbox) {
	if level > c.cfg.Capacity || level < 0 {
		logrus.Warnf("level reading %.2f outside [0, %.2f], entering rescue", level, c.cfg.Capacity)
		c.mode = ModeRescue
		outgoing.Send(Message{Kind: KindLevelFailure})
		outgoing.Send(ModeAnnouncement(ModeRescue))
	}
}

// checkNormLevel guards steady operation against a level reading sagging
// well under the normal band: a quarter below the minimal normal level is
// treated as a sensor fault rather than a regulation problem.
func (c *Controller) checkNormLevel(level float64, outgoing *Mailbox) {
	if level < c.cfg.MinimalNormalLevel-c.cfg.MinimalNormalLevel/4 {
		logrus.Warnf("level reading %.2f far below normal band, entering rescue", level)
		c.mode = ModeRescue
		outgoing.Send(Message{Kind: KindLevelFailure})
		outgoing.Send(ModeAnnouncement(ModeRescue))
	}
}
