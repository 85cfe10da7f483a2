package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeRefresher is a test double that counts Refresh calls,
// signals when the first refresh starts, and can block until explicitly released.
type fakeRefresher struct {
	callCount int32

	started chan struct{} // signals when a refresh starts (first call only)
	block   chan struct{} // keeps Refresh blocked until closed
}

func newFakeRefresher() *fakeRefresher {
	return &fakeRefresher{
		started: make(chan struct{}, 1),
		block:   make(chan struct{}),
	}
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	atomic.AddInt32(&f.callCount, 1)

	// Signal "started" only once (non-blocking).
	select {
	case f.started <- struct{}{}:
	default:
	}

	// Wait until either the test releases the block or the context is done.
	select {
	case <-f.block:
	case <-ctx.Done():
	}

	return nil
}

func (f *fakeRefresher) Calls() int32 {
	return atomic.LoadInt32(&f.callCount)
}

func TestScheduler_StartTriggersRefresh(t *testing.T) {
	fake := newFakeRefresher()

	// Short tick interval, reasonably long refresh timeout so we don't hit it here.
	s := NewSchedulerService(fake, 10*time.Millisecond, 2*time.Second)

	s.Start()
	defer s.Stop()

	// We expect Refresh to be triggered shortly after Start.
	select {
	case <-fake.started:
		// ok
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("expected Refresh to be called after Start, but it wasn't")
	}

	if !s.IsRunning() {
		t.Fatalf("expected scheduler to be running after Start()")
	}
}

func TestScheduler_StopWaitsForRefreshCompletion(t *testing.T) {
	fake := newFakeRefresher()

	// Very frequent ticks, but long enough refresh timeout so ctx doesn't kill
	// the refresh before we manually unblock it.
	s := NewSchedulerService(fake, 5*time.Millisecond, 2*time.Second)

	s.Start()

	// Wait until the first refresh actually starts so Stop happens mid-refresh.
	select {
	case <-fake.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("Refresh was not called in time")
	}

	// Call Stop in a separate goroutine so we can assert it blocks.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	// Stop should NOT return immediately while the refresh is still blocked.
	select {
	case <-done:
		t.Fatalf("Stop() returned before refresh finished")
	case <-time.After(50 * time.Millisecond):
		// good: Stop is still waiting for the refresh to complete
	}

	// Now let the refresh complete.
	close(fake.block)

	// After unblocking the refresh, Stop should return in a reasonable time.
	select {
	case <-done:
		// ok
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("Stop() did not return after refresh completion")
	}

	if s.IsRunning() {
		t.Fatalf("expected scheduler to not be running after Stop()")
	}
}

func TestScheduler_StartStopStartFlow(t *testing.T) {
	fake := newFakeRefresher()
	s := NewSchedulerService(fake, 10*time.Millisecond, 2*time.Second)

	// 1) First start
	s.Start()
	select {
	case <-fake.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("first Start: Refresh was not called")
	}

	// Release the first refresh.
	close(fake.block)

	// Stop the scheduler.
	s.Stop()
	if s.IsRunning() {
		t.Fatalf("scheduler should be stopped after Stop()")
	}

	// Prepare a new block channel for the next refresh.
	fake.block = make(chan struct{})

	// 2) Start again
	s.Start()
	if !s.IsRunning() {
		t.Fatalf("scheduler should be running after second Start()")
	}

	// We expect another refresh to be triggered.
	select {
	case <-fake.started:
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("second Start: Refresh was not called")
	}
}

func TestScheduler_RaceStartStop(t *testing.T) {
	fake := newFakeRefresher()
	s := NewSchedulerService(fake, 5*time.Millisecond, 50*time.Millisecond)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_ = s.Start()
		}()

		go func() {
			defer wg.Done()
			_ = s.Stop()
		}()
	}

	wg.Wait()
}
