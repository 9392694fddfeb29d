package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a [Driver].
//
//	           Animate()               progress reaches 1
//	Idle ─────────────────► Running ─────────────────────► Completed
//	                           │
//	                           │ Stop()
//	                           ▼
//	                        Stopped
//
// Animate may be called from any state and always restarts at Running.
type Status int

const (
	// StatusIdle means the driver has never been started.
	StatusIdle Status = iota
	// StatusRunning means a tween is in flight.
	StatusRunning
	// StatusCompleted means the last tween reached its end value.
	StatusCompleted
	// StatusStopped means the last tween was abandoned before it finished.
	StatusStopped
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Driver tweens a single value from a start to an end over a duration.
//
// Each scheduler step recomputes Value from the elapsed time, the duration and
// the curve, then notifies value listeners. When progress reaches 1 the driver
// stops its ticker and moves to [StatusCompleted].
//
// There is no way to abort a tween without losing its position: Stop freezes
// Value where it is, and callers that want to redirect motion start a new
// tween from the current Value.
type Driver struct {
	// Value is the most recent interpolated value.
	Value float64

	scheduler       *Scheduler
	ticker          *Ticker
	from            float64
	to              float64
	duration        time.Duration
	curve           Curve
	status          Status
	listeners       map[int]func(float64)
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewDriver creates a driver stepped by scheduler.
func NewDriver(scheduler *Scheduler) *Driver {
	return &Driver{
		scheduler:       scheduler,
		curve:           LinearCurve,
		listeners:       make(map[int]func(float64)),
		statusListeners: make(map[int]func(Status)),
	}
}

// Animate starts a tween from from to to. A non-positive duration jumps to
// to and completes before returning. A nil curve is linear.
func (d *Driver) Animate(from, to float64, duration time.Duration, curve Curve) {
	d.stopTicker()
	if curve == nil {
		curve = LinearCurve
	}
	d.from = from
	d.to = to
	d.duration = duration
	d.curve = curve
	d.Value = from
	d.setStatus(StatusRunning)

	if duration <= 0 {
		d.Value = to
		d.notifyListeners()
		d.setStatus(StatusCompleted)
		return
	}

	d.ticker = d.scheduler.NewTicker(d.tick)
	d.ticker.Start()
}

func (d *Driver) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(d.duration)
	if progress >= 1.0 {
		d.Value = d.to
	} else {
		d.Value = Lerp(d.from, d.to, d.curve(progress))
	}
	d.notifyListeners()

	if progress >= 1.0 {
		d.stopTicker()
		d.setStatus(StatusCompleted)
	}
}

// Stop freezes the tween at its current value. Completion listeners see
// [StatusStopped], never [StatusCompleted].
func (d *Driver) Stop() {
	if d.status != StatusRunning {
		return
	}
	d.stopTicker()
	d.setStatus(StatusStopped)
}

func (d *Driver) stopTicker() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
}

// Target returns the end value of the current or last tween.
func (d *Driver) Target() float64 {
	return d.to
}

// Duration returns the duration of the current or last tween.
func (d *Driver) Duration() time.Duration {
	return d.duration
}

// Status returns the current status.
func (d *Driver) Status() Status {
	return d.status
}

// IsAnimating returns true while a tween is in flight.
func (d *Driver) IsAnimating() bool {
	return d.status == StatusRunning
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (d *Driver) AddListener(fn func(float64)) func() {
	id := d.nextListenerID
	d.nextListenerID++
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (d *Driver) AddStatusListener(fn func(Status)) func() {
	id := d.nextListenerID
	d.nextListenerID++
	d.statusListeners[id] = fn
	return func() {
		delete(d.statusListeners, id)
	}
}

func (d *Driver) setStatus(status Status) {
	if d.status == status {
		return
	}
	d.status = status
	for _, listener := range d.statusListeners {
		listener(status)
	}
}

func (d *Driver) notifyListeners() {
	for _, listener := range d.listeners {
		listener(d.Value)
	}
}

// Dispose stops the driver and drops its listeners.
func (d *Driver) Dispose() {
	d.stopTicker()
	d.status = StatusStopped
	d.listeners = map[int]func(float64){}
	d.statusListeners = map[int]func(Status){}
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
