package animation

import "time"

// Clock provides time for animations. [SystemClock] uses wall time; tests
// pass a fake clock to [NewScheduler] to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the system wall clock.
var SystemClock Clock = systemClock{}
