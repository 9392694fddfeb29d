package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/snapscroll/pkg/animation"
	"github.com/go-drift/snapscroll/pkg/config"
	"github.com/go-drift/snapscroll/pkg/geometry"
	"github.com/go-drift/snapscroll/pkg/scroll"
)

const (
	// DefaultContainerWidth is the default container width.
	DefaultContainerWidth = 320
	// DefaultContainerHeight is the default container height.
	DefaultContainerHeight = 480
	// FrameDuration is how far Pump-based helpers advance the clock per frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: stack did not settle")

// StackTester drives a scroll stack with a fake clock. Frames only happen
// when the test pumps them.
type StackTester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	stack     *scroll.Stack
	drag      dragState
}

// NewStackTester creates a tester around a new stack with the given id and
// config. The container defaults to DefaultContainerWidth x
// DefaultContainerHeight and the content to the same size.
// Call Cleanup() when done, or use NewStackTesterWithT() instead.
func NewStackTester(id string, cfg config.Config, opts ...scroll.Option) *StackTester {
	clk := NewFakeClock()
	scheduler := animation.NewScheduler(clk)
	t := &StackTester{
		clock:     clk,
		scheduler: scheduler,
		stack:     scroll.NewStack(id, cfg, scheduler, opts...),
	}
	container := geometry.Size{Width: DefaultContainerWidth, Height: DefaultContainerHeight}
	t.SetSizes(container, container)
	return t
}

// NewStackTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewStackTesterWithT(t testing.TB, id string, cfg config.Config, opts ...scroll.Option) *StackTester {
	tester := NewStackTester(id, cfg, opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the stack.
func (t *StackTester) Cleanup() {
	t.stack.Dispose()
}

// Clock returns the fake clock for advancing time in tests.
func (t *StackTester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler stepping the stack's drivers.
func (t *StackTester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Stack returns the stack under test.
func (t *StackTester) Stack() *scroll.Stack {
	return t.stack
}

// SetSizes lays the stack out with content and container both at the origin.
func (t *StackTester) SetSizes(content, container geometry.Size) {
	t.stack.Layout(scroll.StaticBounds{
		Content:   geometry.RectFromLTWH(0, 0, content.Width, content.Height),
		Container: geometry.RectFromLTWH(0, 0, container.Width, container.Height),
	})
}

// Pump runs a single frame at the current clock time.
func (t *StackTester) Pump() {
	t.scheduler.Step()
}

// PumpFor advances the clock by d one frame at a time, pumping each frame.
func (t *StackTester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		t.clock.Advance(FrameDuration)
		t.Pump()
	}
}

// PumpAndSettle runs frames until no driver is animating or the timeout
// is reached. Each frame advances the fake clock by FrameDuration.
// Returns ErrSettleTimeout if the stack does not settle within timeout.
func (t *StackTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.scheduler.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
