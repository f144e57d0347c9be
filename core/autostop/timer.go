package autostop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"AmbientFM/logger"
)

// Timer runs fire-and-forget delayed callbacks. Scheduled callbacks cannot be
// cancelled: a newer playback supersedes an older timer only by stopping the
// player itself, so a late timer stops whatever player is current when it fires.
type Timer struct {
	after   func(time.Duration) <-chan time.Time
	wg      sync.WaitGroup
	pending atomic.Int64
}

// New returns a Timer driven by the wall clock.
func New() *Timer {
	return NewWithClock(time.After)
}

// NewWithClock returns a Timer that waits on after instead of time.After.
func NewWithClock(after func(time.Duration) <-chan time.Time) *Timer {
	return &Timer{after: after}
}

// Schedule calls onElapsed once d has elapsed. It returns immediately.
func (t *Timer) Schedule(d time.Duration, onElapsed func()) {
	t.wg.Add(1)
	t.pending.Add(1)
	logger.Info("[AutoStop] waiting before stopping the ambient sound", logger.Duration("after", d))

	go func() {
		defer t.wg.Done()
		defer t.pending.Add(-1)

		<-t.after(d)
		logger.Info("[AutoStop] time is over, stopping the ambient sound")
		onElapsed()
	}()
}

// Pending 返回尚未触发的定时器数量
func (t *Timer) Pending() int {
	return int(t.pending.Load())
}

// Wait blocks until every scheduled callback has run or ctx is done.
func (t *Timer) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
