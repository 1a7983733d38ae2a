package boiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTurnPumpsOnOff verifies the binary toggle: at most one pump changes
// state per call, always the lowest-indexed eligible one.
func TestTurnPumpsOnOff(t *testing.T) {
	tests := []struct {
		name      string
		drive     float64
		pumpsOpen []bool
		want      []Message
	}{
		{
			name:      "low estimate opens lowest closed pump",
			drive:     30,
			pumpsOpen: []bool{false, false},
			want:      []Message{OpenPump(0)},
		},
		{
			name:      "low estimate skips open pumps",
			drive:     30,
			pumpsOpen: []bool{true, false},
			want:      []Message{OpenPump(1)},
		},
		{
			name:      "low estimate with all pumps open commands nothing",
			drive:     30,
			pumpsOpen: []bool{true, true},
			want:      nil,
		},
		{
			name:      "half capacity still counts as low",
			drive:     50,
			pumpsOpen: []bool{false, false},
			want:      []Message{OpenPump(0)},
		},
		{
			name:      "high estimate closes lowest open pump",
			drive:     65,
			pumpsOpen: []bool{true, true},
			want:      []Message{ClosePump(0)},
		},
		{
			name:      "high estimate skips closed pumps",
			drive:     65,
			pumpsOpen: []bool{false, true},
			want:      []Message{ClosePump(1)},
		},
		{
			name:      "high estimate with all pumps closed commands nothing",
			drive:     65,
			pumpsOpen: []bool{false, false},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(testCharacteristics())
			var pumpStates []Message
			for i, open := range tt.pumpsOpen {
				pumpStates = append(pumpStates, PumpStateReading(i, open))
			}
			outlet := &Mailbox{}
			c.turnPumpsOnOff(outlet, tt.drive, pumpStates)

			assert.Equal(t, tt.want, append([]Message(nil), outlet.Messages()...))
			if len(tt.want) == 1 {
				wantOpen := tt.want[0].Kind == KindOpenPump
				assert.Equal(t, wantOpen, c.lastPumpState[tt.want[0].Pump],
					"last commanded state must record the command")
			}
		})
	}
}

// TestPumpsToOpen verifies the compensation search picks the pump count
// whose predicted level average lands closest to the normal band midpoint,
// and retains the winning prediction.
func TestPumpsToOpen(t *testing.T) {
	c := NewController(testCharacteristics())

	// level 50, steam 0: candidates predict averages 0 (n=0), 50 (n=1),
	// 100 (n=2) against target 50.
	got := c.pumpsToOpen(50, 0)
	if got != 1 {
		t.Fatalf("pumpsToOpen(50, 0) = %d, want 1", got)
	}
	if c.PredictedWaterLevel() != 50 {
		t.Errorf("predicted level = %f, want 50", c.PredictedWaterLevel())
	}

	// Exhaustive check against the definition for a grid of levels.
	for _, level := range []float64{25, 40, 55, 70} {
		best := c.pumpsToOpen(level, 5)
		target := c.cfg.NormalBandMidpoint()
		for n := 0; n <= c.cfg.PumpCount(); n++ {
			predicted := (c.pumpCountMinLevel(level, n) + c.pumpCountMaxLevel(level, 5, n)) / 2
			bestPredicted := (c.pumpCountMinLevel(level, best) + c.pumpCountMaxLevel(level, 5, best)) / 2
			if abs(target-predicted) < abs(target-bestPredicted) {
				t.Errorf("level %f: n=%d beats chosen %d", level, n, best)
			}
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// TestOpenCompensatingPumps verifies the failed pump is never reopened.
func TestOpenCompensatingPumps(t *testing.T) {
	cfg := testCharacteristics()
	cfg.PumpCapacities = []float64{10, 10, 10}
	c := NewController(cfg)
	c.failedPump = 1

	outlet := &Mailbox{}
	c.openCompensatingPumps(outlet, 2)

	assert.Equal(t, []Message{OpenPump(0), OpenPump(2)}, append([]Message(nil), outlet.Messages()...))
	assert.Equal(t, []bool{true, false, true}, c.lastPumpState)
}
