package boiler

// CycleDuration is the fixed length of one control cycle, in the plant's
// time unit. Pump capacities and steam rates are volumes per time unit, so
// one cycle moves the level by CycleDuration times the net flow.
const CycleDuration = 5

// minAchievableLevel predicts the lowest level reachable one cycle ahead
// given the current total open-pump output, assuming steam production runs
// at its physical maximum for the whole cycle.
func (c *Controller) minAchievableLevel(pumpOutput, level float64) float64 {
	return level + CycleDuration*pumpOutput - CycleDuration*c.cfg.MaximumSteamRate
}

// maxAchievableLevel predicts the highest level reachable one cycle ahead,
// assuming steam production holds at the current reading.
func (c *Controller) maxAchievableLevel(pumpOutput, level, steam float64) float64 {
	return level + CycleDuration*pumpOutput - CycleDuration*steam
}

// levelAverage is the working single-scalar estimate of next-cycle level,
// used to drive pump open/close decisions.
func (c *Controller) levelAverage(pumpOutput, level, steam float64) float64 {
	return (c.minAchievableLevel(pumpOutput, level) + c.maxAchievableLevel(pumpOutput, level, steam)) / 2
}

// pumpCountMinLevel is the pump-count-parametrized variant of
// minAchievableLevel: the prediction assuming n uniform-capacity pumps run
// for the cycle. Used by the degraded-mode compensation search.
func (c *Controller) pumpCountMinLevel(level float64, n int) float64 {
	return level + CycleDuration*c.cfg.UniformPumpCapacity()*float64(n) -
		CycleDuration*c.cfg.MaximumSteamRate
}

// pumpCountMaxLevel mirrors pumpCountMinLevel against the current steam
// reading instead of the physical maximum.
func (c *Controller) pumpCountMaxLevel(level, steam float64, n int) float64 {
	return level + CycleDuration*c.cfg.UniformPumpCapacity()*float64(n) - CycleDuration*steam
}
