// Package countdown contains the countdown state machine as plain data.
//
// State is an immutable record replaced on every operation. The reducers
// (SetDuration, Start, Pause, Reset, Tick) are pure and total: they never
// fail and never touch a clock, so the whole machine can be exercised
// without a scheduler or a rendering environment.
package countdown
