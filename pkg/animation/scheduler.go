// Package animation provides the frame-driven timing primitives used by the
// scroll core.
//
// # Core Components
//
//   - [Scheduler]: owns the set of active tickers and advances them once per
//     frame when the host calls [Scheduler.Step].
//
//   - [Ticker]: calls a callback with the elapsed time since it started, on
//     every step while active.
//
//   - [Driver]: tweens a single float64 from one value to another over a
//     duration, reshaped by a [Curve]. It reports every intermediate value and
//     signals completion through a status listener.
//
//   - Curves: easing functions such as [EaseOut] and [CubicBezier].
//
// # Basic Usage
//
//	scheduler := animation.NewScheduler(animation.SystemClock)
//	driver := animation.NewDriver(scheduler)
//	driver.AddListener(func(v float64) { position.SetLiteral(v) })
//	driver.Animate(0, -200, 300*time.Millisecond, animation.EaseOut)
//
//	// once per frame
//	scheduler.Step()
//
// Nothing in this package starts goroutines. All calls must come from the
// goroutine that steps the scheduler.
package animation

import (
	"slices"
	"time"
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// advanced by their [Scheduler].
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.tickers = append(t.scheduler.tickers, t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	if i := slices.Index(t.scheduler.tickers, t); i >= 0 {
		t.scheduler.tickers = slices.Delete(t.scheduler.tickers, i, i+1)
	}
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}

// Scheduler advances tickers in the order they were started.
type Scheduler struct {
	clock   Clock
	tickers []*Ticker
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock means [SystemClock].
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock}
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// Step advances all active tickers.
// This should be called once per frame by the host.
func (s *Scheduler) Step() {
	if len(s.tickers) == 0 {
		return
	}
	// Callbacks may start or stop tickers.
	tickers := slices.Clone(s.tickers)
	now := s.Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	return len(s.tickers) > 0
}
