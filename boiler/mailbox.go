package boiler

import "fmt"

// MessageKind identifies the kind of a message exchanged with the physical
// units. Inbound kinds carry sensor readings and handshake signals; outbound
// kinds carry actuation commands and announcements.
type MessageKind int

const (
	// Inbound readings and handshakes.
	KindLevel            MessageKind = iota // water level reading (value)
	KindSteam                               // steam output reading (value)
	KindPumpState                           // per-pump open/closed reading (pump, open)
	KindPumpControlState                    // per-pump controller-reported state (pump, open)
	KindBoilerWaiting                       // boiler-side initialisation handshake
	KindUnitsReady                          // physical units ready handshake

	// Outbound commands and announcements.
	KindOpenPump           // open pump (pump)
	KindClosePump          // close pump (pump)
	KindValve              // open the relief valve
	KindMode               // operating mode announcement (mode)
	KindStop               // emergency stop command
	KindProgramReady       // controller-side initialisation handshake
	KindLevelFailure       // level sensor failure detected
	KindSteamFailure       // steam sensor failure detected
	KindPumpFailure        // pump failure detected (pump)
	KindPumpControlFailure // pump controller failure detected (pump)
)

var messageKindNames = map[MessageKind]string{
	KindLevel:              "level",
	KindSteam:              "steam",
	KindPumpState:          "pump-state",
	KindPumpControlState:   "pump-control-state",
	KindBoilerWaiting:      "boiler-waiting",
	KindUnitsReady:         "units-ready",
	KindOpenPump:           "open-pump",
	KindClosePump:          "close-pump",
	KindValve:              "valve",
	KindMode:               "mode",
	KindStop:               "stop",
	KindProgramReady:       "program-ready",
	KindLevelFailure:       "level-failure-detected",
	KindSteamFailure:       "steam-failure-detected",
	KindPumpFailure:        "pump-failure-detected",
	KindPumpControlFailure: "pump-control-failure-detected",
}

func (k MessageKind) String() string {
	if name, ok := messageKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("message-kind(%d)", int(k))
}

// Message is a tagged value: a kind plus at most one payload. Which payload
// field is meaningful depends on the kind; the rest stay zero-valued.
type Message struct {
	Kind  MessageKind
	Value float64       // level and steam readings
	Pump  int           // pump index payloads
	Open  bool          // pump and pump-controller state payloads
	Mode  OperatingMode // mode announcements
}

func (m Message) String() string {
	switch m.Kind {
	case KindLevel, KindSteam:
		return fmt.Sprintf("%s(%.2f)", m.Kind, m.Value)
	case KindPumpState, KindPumpControlState:
		return fmt.Sprintf("%s(%d,%t)", m.Kind, m.Pump, m.Open)
	case KindOpenPump, KindClosePump, KindPumpFailure, KindPumpControlFailure:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Pump)
	case KindMode:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Mode)
	default:
		return m.Kind.String()
	}
}

// LevelReading builds an inbound water level message.
func LevelReading(v float64) Message { return Message{Kind: KindLevel, Value: v} }

// SteamReading builds an inbound steam output message.
func SteamReading(v float64) Message { return Message{Kind: KindSteam, Value: v} }

// PumpStateReading builds an inbound per-pump open/closed message.
func PumpStateReading(pump int, open bool) Message {
	return Message{Kind: KindPumpState, Pump: pump, Open: open}
}

// PumpControlStateReading builds an inbound per-pump controller-state message.
func PumpControlStateReading(pump int, open bool) Message {
	return Message{Kind: KindPumpControlState, Pump: pump, Open: open}
}

// OpenPump builds an outbound open-pump command.
func OpenPump(pump int) Message { return Message{Kind: KindOpenPump, Pump: pump} }

// ClosePump builds an outbound close-pump command.
func ClosePump(pump int) Message { return Message{Kind: KindClosePump, Pump: pump} }

// ModeAnnouncement builds an outbound operating-mode announcement.
func ModeAnnouncement(mode OperatingMode) Message { return Message{Kind: KindMode, Mode: mode} }

// PumpFailureDetected builds an outbound pump failure announcement.
func PumpFailureDetected(pump int) Message { return Message{Kind: KindPumpFailure, Pump: pump} }

// PumpControlFailureDetected builds an outbound pump-controller failure announcement.
func PumpControlFailureDetected(pump int) Message {
	return Message{Kind: KindPumpControlFailure, Pump: pump}
}

// Mailbox is a cycle-scoped ordered container of messages. The controller
// receives one inbox snapshot per cycle and appends its outbound messages to
// a fresh outlet; neither persists beyond the cycle.
type Mailbox struct {
	messages []Message
}

// Send appends a message, preserving order.
func (mb *Mailbox) Send(m Message) {
	mb.messages = append(mb.messages, m)
}

// Len reports the number of messages held.
func (mb *Mailbox) Len() int { return len(mb.messages) }

// At returns the i-th message in arrival order.
func (mb *Mailbox) At(i int) Message { return mb.messages[i] }

// Messages returns the held messages in order. The returned slice is the
// mailbox's backing store; callers must not mutate it.
func (mb *Mailbox) Messages() []Message { return mb.messages }

// Reset empties the mailbox for reuse in the next cycle.
func (mb *Mailbox) Reset() { mb.messages = mb.messages[:0] }

// ExtractOnlyMatch returns the single message of the given kind in the
// inbox. Zero matches and more than one match are both reported as absence:
// a duplicated required reading is as untrustworthy as a missing one, and
// callers must treat either as a fault signal.
func ExtractOnlyMatch(kind MessageKind, inbox *Mailbox) (Message, bool) {
	var match Message
	found := false
	for _, m := range inbox.Messages() {
		if m.Kind != kind {
			continue
		}
		if found {
			return Message{}, false
		}
		match = m
		found = true
	}
	return match, found
}

// ExtractAllMatches returns every message of the given kind, preserving
// inbox order. The result may be empty.
func ExtractAllMatches(kind MessageKind, inbox *Mailbox) []Message {
	var matches []Message
	for _, m := range inbox.Messages() {
		if m.Kind == kind {
			matches = append(matches, m)
		}
	}
	return matches
}
