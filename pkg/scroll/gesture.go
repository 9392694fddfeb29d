package scroll

import (
	"fmt"

	"github.com/go-drift/snapscroll/pkg/errors"
	"github.com/go-drift/snapscroll/pkg/geometry"
)

// GesturePhase is the phase of a drag event.
type GesturePhase int

const (
	// PhaseChanged reports the drag's current translation.
	PhaseChanged GesturePhase = iota
	// PhaseEnded reports the finger lifting.
	PhaseEnded
)

// String returns a human-readable representation of the phase.
func (p GesturePhase) String() string {
	switch p {
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("GesturePhase(%d)", int(p))
	}
}

// GestureEvent is one drag sample from the host's gesture recognizer.
// Translation and PredictedEndTranslation are measured from where the drag
// started.
type GestureEvent struct {
	Phase                   GesturePhase
	Location                geometry.Offset
	Translation             geometry.Offset
	PredictedEndTranslation geometry.Offset
}

// GestureState is the state of a [GestureReactor].
//
//	        first Changed              Ended
//	Idle ─────────────────► Dragging ────────► Settling
//	 ▲                         ▲                  │
//	 │                         └──── Changed ─────┤
//	 └──────────── motion completes ──────────────┘
type GestureState int

const (
	StateIdle GestureState = iota
	StateDragging
	StateSettling
)

// String returns a human-readable representation of the state.
func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return fmt.Sprintf("GestureState(%d)", int(s))
	}
}

// GestureReactor turns drag events into live overscroll while the finger is
// down and into a planned settle once it lifts.
type GestureReactor struct {
	stack      *Stack
	model      OverscrollModel
	state      GestureState
	origin     geometry.Offset
	foreground bool
}

func newGestureReactor(stack *Stack, model OverscrollModel) *GestureReactor {
	return &GestureReactor{stack: stack, model: model, foreground: true}
}

// State returns the current state.
func (g *GestureReactor) State() GestureState {
	return g.state
}

// Origin returns where the current or last drag started.
func (g *GestureReactor) Origin() geometry.Offset {
	return g.origin
}

// Handle processes one gesture event.
func (g *GestureReactor) Handle(ev GestureEvent) {
	ev = g.sanitize(ev)
	switch ev.Phase {
	case PhaseChanged:
		if !g.foreground {
			return
		}
		if g.state != StateDragging {
			g.begin(ev)
		}
		g.drag(ev)
	case PhaseEnded:
		if g.state != StateDragging {
			return
		}
		g.release(ev)
	}
}

// SetForeground records whether the app is in the foreground. Leaving the
// foreground mid-drag releases the drag with no translation, since no end
// event will arrive.
func (g *GestureReactor) SetForeground(foreground bool) {
	g.foreground = foreground
	if !foreground && g.state == StateDragging {
		errors.Reportf("scroll.GestureReactor.SetForeground", errors.KindGesture, g.stack.id,
			"backgrounded mid-drag, forcing release")
		g.release(GestureEvent{Phase: PhaseEnded})
	}
}

func (g *GestureReactor) begin(ev GestureEvent) {
	g.stack.haltMotion()
	g.origin = ev.Location.Sub(ev.Translation)
	g.state = StateDragging
}

// drag recomputes the live translation. The target is never moved here;
// the renderer adds the live translation on top of it.
func (g *GestureReactor) drag(ev GestureEvent) {
	s := g.stack
	// A scroll request made mid-drag is abandoned where it got to.
	s.haltMotion()
	content := s.state.ContentBounds.Size().AsOffset()
	container := s.state.ContainerBounds.Size().AsOffset()
	var live geometry.Offset
	for _, axis := range geometry.Each {
		if !s.axes.Has(axis) {
			continue
		}
		position := s.position(axis)
		t := g.model.Translate(content.Component(axis), container.Component(axis), position.Target(), ev.Translation.Component(axis))
		live = live.With(axis, t)
	}
	s.state.LiveTranslation = live
	s.notify()
}

func (g *GestureReactor) release(ev GestureEvent) {
	s := g.stack
	g.drag(ev)
	live := s.state.LiveTranslation

	var residual geometry.Offset
	var bias DirectionBias
	for _, axis := range geometry.Each {
		if !s.axes.Has(axis) {
			continue
		}
		position := s.position(axis)
		position.Jump(position.Target() + live.Component(axis))
		r := ev.PredictedEndTranslation.Component(axis) - live.Component(axis)
		residual = residual.With(axis, r)
		if axis == geometry.AxisX {
			bias.X = BiasOf(r)
		} else {
			bias.Y = BiasOf(r)
		}
	}
	s.state.LiveTranslation = geometry.Offset{}

	g.state = StateSettling
	if !s.planAndAnimate(ScrollRequest{Translation: &residual, Bias: bias}) && g.state == StateSettling {
		g.state = StateIdle
	}
	s.notify()
}

// settled is called by the stack when a motion completes.
func (g *GestureReactor) settled() {
	if g.state == StateSettling {
		g.state = StateIdle
	}
}

func (g *GestureReactor) sanitize(ev GestureEvent) GestureEvent {
	fields := []struct {
		name  string
		value *geometry.Offset
	}{
		{"location", &ev.Location},
		{"translation", &ev.Translation},
		{"predicted_end_translation", &ev.PredictedEndTranslation},
	}
	for _, f := range fields {
		if f.value.IsFinite() {
			continue
		}
		errors.Report(&errors.ScrollError{
			Op:    "scroll.GestureReactor.Handle",
			Kind:  errors.KindGesture,
			Stack: g.stack.id,
			Err:   &errors.ValueError{Field: f.name, Got: *f.value, Used: f.value.Sanitize()},
		})
		*f.value = f.value.Sanitize()
	}
	return ev
}
