package testing

import (
	"testing"
	"time"

	"github.com/go-drift/snapscroll/pkg/animation"
	"github.com/go-drift/snapscroll/pkg/config"
	"github.com/go-drift/snapscroll/pkg/geometry"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_DrivesScheduler(t *testing.T) {
	clk := NewFakeClock()
	scheduler := animation.NewScheduler(clk)

	var elapsed []time.Duration
	ticker := scheduler.NewTicker(func(d time.Duration) {
		elapsed = append(elapsed, d)
	})
	ticker.Start()

	clk.Advance(16 * time.Millisecond)
	scheduler.Step()
	clk.Advance(16 * time.Millisecond)
	scheduler.Step()

	if len(elapsed) != 2 || elapsed[0] != 16*time.Millisecond || elapsed[1] != 32*time.Millisecond {
		t.Errorf("expected [16ms 32ms], got %v", elapsed)
	}
}

func TestStackTester_Clock(t *testing.T) {
	tester := NewStackTesterWithT(t, "clock", config.Default())
	clk := tester.Clock()

	if clk == nil {
		t.Fatal("expected non-nil clock")
	}

	start := clk.Now()
	clk.Advance(500 * time.Millisecond)
	if clk.Now().Sub(start) != 500*time.Millisecond {
		t.Error("clock advancement not reflected")
	}
	if !tester.Scheduler().Now().Equal(clk.Now()) {
		t.Error("scheduler should read the fake clock")
	}
}

func TestStackTester_ClockAdvance(t *testing.T) {
	tester := NewStackTesterWithT(t, "advance", config.Default())
	tester.SetSizes(geometry.Size{Width: 320, Height: 2000}, geometry.Size{Width: 320, Height: 480})

	if !tester.Stack().ScrollToPosition(geometry.Offset{Y: -400}) {
		t.Fatal("expected ScrollToPosition to start a motion")
	}
	duration := tester.Stack().LastPlan().Duration
	if duration <= 0 {
		t.Fatalf("expected positive duration, got %v", duration)
	}

	// Advance to ~halfway
	tester.Clock().Advance(duration / 2)
	tester.Pump()

	mid := tester.Stack().Offset().Y
	if mid >= 0 || mid <= -400 {
		t.Errorf("expected offset between 0 and -400 at half time, got %v", mid)
	}

	// Advance past the end of the animation
	tester.Clock().Advance(duration)
	tester.Pump()

	if got := tester.Stack().Offset().Y; got != -400 {
		t.Errorf("expected final offset -400, got %v", got)
	}
}
