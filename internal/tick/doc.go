// Package tick implements the periodic signal that drives a running countdown.
//
// A Source hands out Subscription handles. A handle forwards ticks into the
// owner's sink channel until it is cancelled; Cancel returns only after the
// forwarding goroutine has exited, so no tick from a cancelled handle can be
// observed afterwards.
package tick
