package testing

import (
	"github.com/go-drift/snapscroll/pkg/geometry"
	"github.com/go-drift/snapscroll/pkg/scroll"
)

// DefaultDragSteps is the number of Changed events a scripted drag emits.
const DefaultDragSteps = 5

// dragState tracks the drag a tester has in progress.
type dragState struct {
	active      bool
	start       geometry.Offset
	translation geometry.Offset
}

// GestureScript is a scripted drag: a run of Changed events followed by one
// Ended event.
type GestureScript struct {
	// Start is where the finger goes down.
	Start geometry.Offset
	// Translations are the cumulative translations of the Changed events.
	Translations []geometry.Offset
	// PredictedEnd is the predicted end translation reported on release.
	PredictedEnd geometry.Offset
}

// DragScript moves from start by delta in steps evenly spaced Changed events
// and releases without any fling.
func DragScript(start, delta geometry.Offset, steps int) GestureScript {
	if steps < 1 {
		steps = 1
	}
	script := GestureScript{Start: start, PredictedEnd: delta}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		script.Translations = append(script.Translations, geometry.Offset{
			X: delta.X * frac,
			Y: delta.Y * frac,
		})
	}
	return script
}

// FlingScript is DragScript released with velocity (points per second),
// projected the way a platform gesture recognizer predicts the end of a
// fling decelerating at rate.
func FlingScript(start, delta, velocity geometry.Offset, rate float64) GestureScript {
	script := DragScript(start, delta, DefaultDragSteps)
	script.PredictedEnd = geometry.Offset{
		X: delta.X + ProjectedDistance(velocity.X, rate),
		Y: delta.Y + ProjectedDistance(velocity.Y, rate),
	}
	return script
}

// ProjectedDistance returns how far a fling at velocity (points per second)
// travels when it loses a fraction 1-rate of its speed every millisecond.
func ProjectedDistance(velocity, rate float64) float64 {
	if !(rate > 0 && rate < 1) {
		return 0
	}
	return velocity / 1000 * rate / (1 - rate)
}

// Events returns the script as gesture events.
func (g GestureScript) Events() []scroll.GestureEvent {
	events := make([]scroll.GestureEvent, 0, len(g.Translations)+1)
	var last geometry.Offset
	for _, tr := range g.Translations {
		events = append(events, scroll.GestureEvent{
			Phase:       scroll.PhaseChanged,
			Location:    g.Start.Add(tr),
			Translation: tr,
		})
		last = tr
	}
	events = append(events, scroll.GestureEvent{
		Phase:                   scroll.PhaseEnded,
		Location:                g.Start.Add(last),
		Translation:             last,
		PredictedEndTranslation: g.PredictedEnd,
	})
	return events
}

// Play sends every event of script, pumping one frame between events.
func (t *StackTester) Play(script GestureScript) {
	for _, ev := range script.Events() {
		t.stack.HandleGesture(ev)
		t.clock.Advance(FrameDuration)
		t.Pump()
	}
	t.drag = dragState{}
}

// Drag drags the content by delta and releases it without a fling.
func (t *StackTester) Drag(delta geometry.Offset) {
	t.Play(DragScript(geometry.Offset{}, delta, DefaultDragSteps))
}

// Fling drags the content by delta and releases it at velocity, using the
// stack's configured deceleration rate for the prediction.
func (t *StackTester) Fling(delta, velocity geometry.Offset) {
	rate := t.stack.Config().DecelerationRate
	t.Play(FlingScript(geometry.Offset{}, delta, velocity, rate))
}

// DragBy moves an ongoing drag by delta, starting one if needed, and leaves
// the finger down.
func (t *StackTester) DragBy(delta geometry.Offset) {
	if !t.drag.active {
		t.drag = dragState{active: true}
	}
	t.drag.translation = t.drag.translation.Add(delta)
	t.stack.HandleGesture(scroll.GestureEvent{
		Phase:       scroll.PhaseChanged,
		Location:    t.drag.start.Add(t.drag.translation),
		Translation: t.drag.translation,
	})
}

// Release lifts the finger of an ongoing drag. predicted is the extra
// distance the platform expects the fling to carry the content.
func (t *StackTester) Release(predicted geometry.Offset) {
	if !t.drag.active {
		return
	}
	t.stack.HandleGesture(scroll.GestureEvent{
		Phase:                   scroll.PhaseEnded,
		Location:                t.drag.start.Add(t.drag.translation),
		Translation:             t.drag.translation,
		PredictedEndTranslation: t.drag.translation.Add(predicted),
	})
	t.drag = dragState{}
}
