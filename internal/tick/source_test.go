package tick

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewSource_DefaultInterval verifies the fallback period.
func TestNewSource_DefaultInterval(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultInterval, NewSource(0).Interval())
	require.Equal(t, DefaultInterval, NewSource(-time.Second).Interval())
	require.Equal(t, 250*time.Millisecond, NewSource(250*time.Millisecond).Interval())
}

// TestSubscription_DeliversOncePerInterval counts ticks over a fixed window.
func TestSubscription_DeliversOncePerInterval(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sink := make(chan time.Time)
		sub := NewSource(time.Second).Subscribe(sink)

		start := time.Now()
		for i := 1; i <= 3; i++ {
			at := <-sink
			require.Equal(t, time.Duration(i)*time.Second, at.Sub(start))
		}

		sub.Cancel()
	})
}

// TestSubscription_CancelStopsDelivery ensures nothing arrives after Cancel returns.
func TestSubscription_CancelStopsDelivery(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sink := make(chan time.Time, 10)
		sub := NewSource(time.Second).Subscribe(sink)

		time.Sleep(2500 * time.Millisecond)
		sub.Cancel()
		require.Len(t, sink, 2)

		time.Sleep(5 * time.Second)
		synctest.Wait()
		require.Len(t, sink, 2)

		select {
		case <-sub.Done():
		default:
			t.Fatal("subscription not drained after Cancel")
		}
	})
}

// TestSubscription_CancelWhileBlocked cancels a handle whose consumer never reads.
func TestSubscription_CancelWhileBlocked(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sink := make(chan time.Time)
		sub := NewSource(time.Second).Subscribe(sink)

		time.Sleep(3 * time.Second)
		synctest.Wait()

		sub.Cancel()
		sub.Cancel()

		var nilSub *Subscription
		nilSub.Cancel()
	})
}
