package notify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.liftoff.dev/liftoff/internal/core/domain"
)

func TestTriggerScheduler_DelayFiresOnce(t *testing.T) {
	fired := make(chan string, 4)
	s := newTriggerScheduler(func(req domain.NotificationRequest) {
		fired <- req.ID
	})
	defer s.Shutdown()

	s.Add(domain.NotificationRequest{
		ID:      "once",
		Trigger: domain.Trigger{Kind: domain.TriggerDelay, Delay: 10 * time.Millisecond},
	})
	require.True(t, s.Pending("once"))

	select {
	case id := <-fired:
		require.Equal(t, "once", id)
	case <-time.After(time.Second):
		t.Fatal("trigger never fired")
	}

	// One-shot triggers leave the pending set after firing.
	require.Eventually(t, func() bool { return !s.Pending("once") }, time.Second, 5*time.Millisecond)
}

func TestTriggerScheduler_IntervalReArms(t *testing.T) {
	var count atomic.Int32
	fired := make(chan struct{}, 8)
	s := newTriggerScheduler(func(domain.NotificationRequest) {
		count.Add(1)
		fired <- struct{}{}
	})
	defer s.Shutdown()

	s.Add(domain.NotificationRequest{
		ID:      "tick",
		Trigger: domain.Trigger{Kind: domain.TriggerInterval, Delay: 10 * time.Millisecond},
	})

	for range 2 {
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("interval trigger stopped firing")
		}
	}
	require.GreaterOrEqual(t, count.Load(), int32(2))
	// Interval triggers stay pending and cancellable.
	require.True(t, s.Pending("tick"))
	require.True(t, s.Cancel("tick"))
}

func TestTriggerScheduler_Cancel(t *testing.T) {
	s := newTriggerScheduler(func(domain.NotificationRequest) {
		t.Error("cancelled trigger fired")
	})
	defer s.Shutdown()

	s.Add(domain.NotificationRequest{
		ID:      "doomed",
		Trigger: domain.Trigger{Kind: domain.TriggerDelay, Delay: time.Hour},
	})

	require.True(t, s.Cancel("doomed"))
	require.False(t, s.Cancel("doomed"))
	require.False(t, s.Pending("doomed"))
}

func TestTriggerScheduler_ShutdownStopsAll(t *testing.T) {
	s := newTriggerScheduler(func(domain.NotificationRequest) {
		t.Error("trigger fired after shutdown")
	})

	s.Add(domain.NotificationRequest{
		ID:      "a",
		Trigger: domain.Trigger{Kind: domain.TriggerDelay, Delay: time.Hour},
	})
	s.Add(domain.NotificationRequest{
		ID:      "b",
		Trigger: domain.Trigger{Kind: domain.TriggerInterval, Delay: time.Hour},
	})

	s.Shutdown()
	require.False(t, s.Pending("a"))
	require.False(t, s.Pending("b"))
}
