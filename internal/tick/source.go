package tick

import (
	"sync"
	"time"
)

// DefaultInterval is the period between ticks.
const DefaultInterval = time.Second

// Source creates tick subscriptions with a fixed period.
type Source struct {
	// interval is the period between delivered ticks.
	interval time.Duration
}

// NewSource returns a Source ticking every interval.
// A non-positive interval falls back to DefaultInterval.
func NewSource(interval time.Duration) *Source {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Source{
		interval: interval,
	}
}

// Interval returns the tick period.
func (s *Source) Interval() time.Duration {
	return s.interval
}

// Subscription is a live tick stream owned by a single consumer.
type Subscription struct {
	// done is closed by Cancel to stop the forwarding goroutine.
	done chan struct{}
	// stopped is closed when the forwarding goroutine has returned.
	stopped chan struct{}
	// once guards done against double close.
	once sync.Once
}

// Subscribe starts delivering ticks into sink. The caller owns the returned
// handle and must Cancel it. Delivery blocks until sink is read or the
// handle is cancelled, so ticks are never queued behind a slow consumer.
func (s *Source) Subscribe(sink chan<- time.Time) *Subscription {
	sub := &Subscription{
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	ticker := time.NewTicker(s.interval)

	go func() {
		defer close(sub.stopped)
		defer ticker.Stop()

		for {
			select {
			case <-sub.done:
				return
			case at := <-ticker.C:
				select {
				case sink <- at:
				case <-sub.done:
					return
				}
			}
		}
	}()

	return sub
}

// Cancel stops the stream and waits for the forwarding goroutine to exit.
// It is safe to call more than once and on a nil handle.
func (sub *Subscription) Cancel() {
	if sub == nil {
		return
	}

	sub.once.Do(func() {
		close(sub.done)
	})

	<-sub.stopped
}

// Done is closed once the subscription has been cancelled and drained.
func (sub *Subscription) Done() <-chan struct{} {
	return sub.stopped
}
