// Package boiler implements the control-cycle decision core of an automatic
// steam boiler controller.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - mailbox.go: Message kinds, the cycle-scoped Mailbox, and the classifier queries
//   - mode.go: The operating-mode enumeration and its transition summary
//   - controller.go: The Controller, its per-cycle Clock entry point, and the mode stages
//
// # Architecture
//
// The controller is invoked once per fixed-duration control cycle with an
// inbox of sensor readings and an outlet for actuation messages. One Clock
// call runs: classification → transmission integrity → fault detection →
// mode-specific stage → pump regulation, mutating the controller's own state
// (mode, last-commanded pump states, steam carryover, failed pump index)
// exactly once per cycle.
//
// Collaborators live in sub-packages:
//   - boiler/plant: a simulated set of physical units for closed-loop runs
//   - boiler/scenario: YAML-described runs with timed fault injection
//
// The core performs no I/O beyond the mailbox exchange; loading plant
// characteristics and driving the loop belong to the cmd package.
package boiler
