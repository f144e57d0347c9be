package autostop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// manualClock hands out channels the test fires by hand.
type manualClock struct {
	requested chan time.Duration
	fire      chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{requested: make(chan time.Duration, 8), fire: make(chan time.Time)}
}

func (m *manualClock) after(d time.Duration) <-chan time.Time {
	m.requested <- d
	return m.fire
}

func TestScheduleDoesNotBlockAndFiresOnce(t *testing.T) {
	clock := newManualClock()
	timer := NewWithClock(clock.after)

	var calls atomic.Int32
	fired := make(chan struct{}, 1)
	timer.Schedule(time.Minute, func() {
		calls.Add(1)
		fired <- struct{}{}
	})

	select {
	case d := <-clock.requested:
		if d != time.Minute {
			t.Errorf("waited for %v, want 1m", d)
		}
	case <-time.After(time.Second):
		t.Fatal("timer never started waiting")
	}
	if calls.Load() != 0 {
		t.Fatal("callback ran before the duration elapsed")
	}
	if timer.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", timer.Pending())
	}

	clock.fire <- time.Now()
	<-fired

	if err := timer.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 1 {
		t.Errorf("callback ran %d times, want 1", calls.Load())
	}
	if timer.Pending() != 0 {
		t.Errorf("Pending() = %d after firing", timer.Pending())
	}
}

func TestWaitHonoursContext(t *testing.T) {
	clock := newManualClock()
	timer := NewWithClock(clock.after)
	timer.Schedule(time.Hour, func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := timer.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() = %v, want deadline exceeded", err)
	}
}

func TestWallClockTimer(t *testing.T) {
	timer := New()
	done := make(chan struct{})
	timer.Schedule(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("wall clock timer did not fire")
	}
}
