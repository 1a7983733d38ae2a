package boiler

// testCharacteristics is the reference two-pump plant used across the core
// tests: 100 litre vessel, 40–60 normal band, 20–80 limit levels, two
// 10 litre/unit pumps, 20 litre/unit maximum steam rate.
func testCharacteristics() PlantCharacteristics {
	return PlantCharacteristics{
		Capacity:           100,
		MinimalLimitLevel:  20,
		MaximalLimitLevel:  80,
		MinimalNormalLevel: 40,
		MaximalNormalLevel: 60,
		MaximumSteamRate:   20,
		PumpCapacities:     []float64{10, 10},
	}
}

// healthyInbox builds an inbox whose readings all corroborate the
// controller's last commands: level and steam as given, one pump-state and
// one pump-control-state message per pump mirroring pumpsOpen, plus any
// extra messages appended in order.
func healthyInbox(level, steam float64, pumpsOpen []bool, extra ...Message) *Mailbox {
	inbox := &Mailbox{}
	inbox.Send(LevelReading(level))
	inbox.Send(SteamReading(steam))
	for i, open := range pumpsOpen {
		inbox.Send(PumpStateReading(i, open))
		inbox.Send(PumpControlStateReading(i, open))
	}
	for _, m := range extra {
		inbox.Send(m)
	}
	return inbox
}

// outletKinds projects an outlet onto its message kinds, in order.
func outletKinds(outlet *Mailbox) []MessageKind {
	kinds := make([]MessageKind, 0, outlet.Len())
	for _, m := range outlet.Messages() {
		kinds = append(kinds, m.Kind)
	}
	return kinds
}

// outletContains reports whether the outlet holds an exact message.
func outletContains(outlet *Mailbox, want Message) bool {
	for _, m := range outlet.Messages() {
		if m == want {
			return true
		}
	}
	return false
}

// countKind counts outlet messages of one kind.
func countKind(outlet *Mailbox, kind MessageKind) int {
	n := 0
	for _, m := range outlet.Messages() {
		if m.Kind == kind {
			n++
		}
	}
	return n
}
