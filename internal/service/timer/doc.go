// Package timer runs one countdown activation.
//
// A Machine owns the countdown state and the single tick subscription. All
// triggers and ticks are processed one at a time on the machine's event
// loop. A looplab/fsm lifecycle mirrors the run state: entering "running"
// acquires the tick subscription and leaving it releases the handle, so
// every path out of Running (pause, reset, new duration, exhaustion) drops
// the ticks. Close and context cancellation release it as well.
package timer
