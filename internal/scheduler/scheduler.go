package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Refresher is the dependency that actually does the work. The scheduler
// calls Refresh on a fixed interval to keep the cached account balance warm.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SchedulerService exposes a small control surface for the scheduler.
// Start/Stop are synchronous controls, and IsRunning reports
// whether the scheduler is currently accepting ticks.
type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

// DefaultInterval is used when no custom interval is provided.
const DefaultInterval = 5 * time.Minute

// DefaultRefreshTimeout is how long we allow a single refresh to run
// before cancelling it via context timeout.
const DefaultRefreshTimeout = 30 * time.Second

// controlTimeout is how long we wait for the control loop to
// accept a Start/Stop command and acknowledge it. This protects
// callers from hanging forever if the loop is not running.
const controlTimeout = 2 * time.Second

// controlOp represents the kind of command sent into the internal control loop.
type controlOp int

const (
	opStart controlOp = iota
	opStop
	opStatus
)

// controlMsg is sent over the ctrl channel to drive the scheduler's state.
type controlMsg struct {
	op   controlOp
	resp chan bool // used by callers to get a synchronous answer
}

// schedulerService owns the internal state and runs the control loop.
// All mutable state lives in the loop goroutine, so we don't need locks.
type schedulerService struct {
	refresher      Refresher
	interval       time.Duration
	refreshTimeout time.Duration
	ctrl           chan controlMsg
}

// NewSchedulerService creates a new scheduler with the given interval
// and refresh timeout. If any of them is <= 0, sane defaults are used instead.
func NewSchedulerService(
	refresher Refresher,
	interval time.Duration,
	refreshTimeout time.Duration,
) SchedulerService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if refreshTimeout <= 0 {
		refreshTimeout = DefaultRefreshTimeout
	}

	s := &schedulerService{
		refresher:      refresher,
		interval:       interval,
		refreshTimeout: refreshTimeout,
		ctrl:           make(chan controlMsg),
	}

	// The control loop is started in its own goroutine and lives
	// for the lifetime of the process.
	go s.loop()

	return s
}

// Start tells the scheduler to begin processing ticks.
// It blocks until the internal loop has acknowledged the state change,
// or returns an error if the control loop does not respond in time.
func (s *schedulerService) Start() error {
	resp := make(chan bool)
	msg := controlMsg{op: opStart, resp: resp}

	// First: make sure the control loop is actually listening
	// on the ctrl channel.
	select {
	case s.ctrl <- msg:
		// sent ok
	case <-time.After(controlTimeout):
		return fmt.Errorf("[Refresher] Start: control loop not responding")
	}

	// Then: wait for the loop to acknowledge the state change.
	select {
	case <-resp:
		return nil
	case <-time.After(controlTimeout):
		return fmt.Errorf("[Refresher] Start: acknowledgement timeout")
	}
}

// Stop tells the scheduler to stop accepting new ticks.
// If a refresh is currently running, Stop will wait until it finishes
// (or times out) before returning. If the control loop does not respond,
// Stop returns an error instead of blocking forever.
func (s *schedulerService) Stop() error {
	resp := make(chan bool)
	msg := controlMsg{op: opStop, resp: resp}

	// Try to send the Stop command to the control loop.
	select {
	case s.ctrl <- msg:
		// sent ok
	case <-time.After(controlTimeout):
		return fmt.Errorf("[Refresher] Stop: control loop not responding")
	}

	// Wait for the loop to confirm that it has stopped.
	select {
	case <-resp:
		return nil
	case <-time.After(controlTimeout):
		return fmt.Errorf("[Refresher] Stop: acknowledgement timeout")
	}
}

// IsRunning reports whether the scheduler is currently in "running" mode.
// It does not mean that a refresh is actively executing, only that new ticks
// will be processed when the timer fires.
func (s *schedulerService) IsRunning() bool {
	resp := make(chan bool)
	s.ctrl <- controlMsg{op: opStatus, resp: resp}
	return <-resp
}

// loop is the heart of the scheduler. It owns all mutable state
// and reacts to either control messages or timer ticks.
func (s *schedulerService) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// running: whether we should accept new ticks
	// inRefresh: whether a refresh is currently executing
	running := false
	inRefresh := false

	// pendingStop is a response channel to be completed once
	// the current refresh finishes, if Stop was called mid-refresh.
	var pendingStop chan bool

	for {
		select {
		case msg := <-s.ctrl:
			switch msg.op {
			case opStart:
				if !running {
					log.Printf("[Refresher] Started (interval=%s, timeout=%s)\n",
						s.interval, s.refreshTimeout)
				}
				running = true
				msg.resp <- true

			case opStop:
				// If we're already idle and not refreshing,
				// just acknowledge the Stop immediately.
				if !running && !inRefresh {
					log.Println("[Refresher] Stop requested, but already idle.")
					msg.resp <- true
					continue
				}

				log.Println("[Refresher] Stop requested. Waiting for current refresh (if any)...")

				// Mark as not running so future ticks are ignored.
				running = false

				if inRefresh {
					// Defer the response until the refresh completes.
					pendingStop = msg.resp
				} else {
					// No active refresh, we can safely stop now.
					msg.resp <- true
				}

			case opStatus:
				msg.resp <- running
			}

		case <-ticker.C:
			// If we're not running or already refreshing, ignore this tick.
			if !running || inRefresh {
				continue
			}

			inRefresh = true

			// Time-bound the refresh so Stop doesn't hang forever
			// if Refresh never returns.
			ctx, cancel := context.WithTimeout(context.Background(), s.refreshTimeout)

			err := s.refresher.Refresh(ctx)
			cancel()

			if err != nil {
				log.Printf("[Refresher] Refresh failed: %v\n", err)
			}

			inRefresh = false

			// If a Stop was requested while we were refreshing,
			// complete it now and clear the pending channel.
			if pendingStop != nil {
				pendingStop <- true
				pendingStop = nil
				log.Println("[Refresher] Stopped (no active refresh).")
			}
		}
	}
}
