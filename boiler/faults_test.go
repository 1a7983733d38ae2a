package boiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pumpReadings(open ...bool) []Message {
	var msgs []Message
	for i, o := range open {
		msgs = append(msgs, PumpStateReading(i, o))
	}
	return msgs
}

func controlReadings(open ...bool) []Message {
	var msgs []Message
	for i, o := range open {
		msgs = append(msgs, PumpControlStateReading(i, o))
	}
	return msgs
}

// TestCheckPumpStatus verifies a pump failure is flagged only when both the
// pump and its controller contradict the last command.
func TestCheckPumpStatus(t *testing.T) {
	t.Run("both disagree flags the pump", func(t *testing.T) {
		c := NewController(testCharacteristics())
		c.lastPumpState = []bool{false, true} // pump 1 commanded open

		outlet := &Mailbox{}
		c.checkPumpStatus(pumpReadings(false, false), controlReadings(false, false), outlet)

		assert.Equal(t, ModeDegraded, c.Mode())
		assert.Equal(t, 1, c.FailedPump())
		assert.True(t, outletContains(outlet, PumpFailureDetected(1)))
		assert.True(t, outletContains(outlet, ModeAnnouncement(ModeDegraded)))
	})

	t.Run("controller corroborating the command is not a pump failure", func(t *testing.T) {
		c := NewController(testCharacteristics())
		c.lastPumpState = []bool{false, true}

		outlet := &Mailbox{}
		// The pump reads closed but its controller confirms the command.
		c.checkPumpStatus(pumpReadings(false, false), controlReadings(false, true), outlet)

		assert.Equal(t, ModeWaiting, c.Mode())
		assert.Equal(t, -1, c.FailedPump())
		assert.Zero(t, outlet.Len())
	})

	t.Run("simultaneous failures retain the last flagged index", func(t *testing.T) {
		c := NewController(testCharacteristics())
		c.lastPumpState = []bool{true, true}

		outlet := &Mailbox{}
		c.checkPumpStatus(pumpReadings(false, false), controlReadings(false, false), outlet)

		// Both pumps are announced, only the most recent index survives.
		assert.True(t, outletContains(outlet, PumpFailureDetected(0)))
		assert.True(t, outletContains(outlet, PumpFailureDetected(1)))
		assert.Equal(t, 1, c.FailedPump())
	})
}

// TestCheckControlStatus verifies the lenient controller check degrades on
// any controller/command disagreement, pump reading notwithstanding.
func TestCheckControlStatus(t *testing.T) {
	c := NewController(testCharacteristics())
	c.lastPumpState = []bool{true, false}

	outlet := &Mailbox{}
	c.checkControlStatus(controlReadings(false, false), outlet)

	assert.Equal(t, ModeDegraded, c.Mode())
	assert.True(t, outletContains(outlet, PumpControlFailureDetected(0)))
	// The lenient variant never touches the failed pump record.
	assert.Equal(t, -1, c.FailedPump())
}

// TestCheckControlStatusStrict verifies re-validation escalates a
// controller disagreement to an emergency stop with a stop command.
func TestCheckControlStatusStrict(t *testing.T) {
	c := NewController(testCharacteristics())
	c.mode = ModeDegraded
	c.lastPumpState = []bool{false, false}

	outlet := &Mailbox{}
	c.checkControlStatusStrict(controlReadings(true, false), outlet)

	assert.Equal(t, ModeEmergencyStop, c.Mode())
	assert.True(t, outletContains(outlet, PumpControlFailureDetected(0)))
	assert.Equal(t, 1, countKind(outlet, KindStop))
}

// TestCheckControlStatusStrictExemptsFailedPump verifies the known-failed
// pump does not re-trip re-validation, so degraded operation can continue
// across cycles.
func TestCheckControlStatusStrictExemptsFailedPump(t *testing.T) {
	c := NewController(testCharacteristics())
	c.mode = ModeDegraded
	c.failedPump = 0
	c.lastPumpState = []bool{false, false}

	outlet := &Mailbox{}
	c.checkControlStatusStrict(controlReadings(true, false), outlet)

	assert.Equal(t, ModeDegraded, c.Mode())
	assert.Zero(t, outlet.Len())
}

func TestActivePumpOutput(t *testing.T) {
	c := NewController(testCharacteristics())
	if got := c.activePumpOutput(pumpReadings(true, false)); got != 10 {
		t.Errorf("activePumpOutput = %f, want 10", got)
	}
	if got := c.activePumpOutput(pumpReadings(true, true)); got != 20 {
		t.Errorf("activePumpOutput = %f, want 20", got)
	}
	if got := c.activePumpOutput(pumpReadings(false, false)); got != 0 {
		t.Errorf("activePumpOutput = %f, want 0", got)
	}
}
