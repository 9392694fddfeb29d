package scroll

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/go-drift/snapscroll/pkg/geometry"
)

// Bias is the direction a motion was heading along one axis.
type Bias int8

const (
	BiasNone Bias = iota
	// BiasForward means toward larger position values.
	BiasForward
	// BiasBackward means toward smaller position values.
	BiasBackward
)

// String returns a human-readable representation of the bias.
func (b Bias) String() string {
	switch b {
	case BiasForward:
		return "forward"
	case BiasBackward:
		return "backward"
	default:
		return "none"
	}
}

// BiasOf returns the bias matching the sign of v.
func BiasOf(v float64) Bias {
	switch {
	case v > 0:
		return BiasForward
	case v < 0:
		return BiasBackward
	default:
		return BiasNone
	}
}

// DirectionBias holds a bias per axis.
type DirectionBias struct {
	X Bias
	Y Bias
}

func (d DirectionBias) axis(axis geometry.Axis) Bias {
	if axis == geometry.AxisY {
		return d.Y
	}
	return d.X
}

// ScrollRequest asks a stack to move. Position wins over Translation; with
// neither the stack re-settles from its current target. GuideID restricts
// the candidates to one guide and disables the snapping tolerance.
type ScrollRequest struct {
	Position    *geometry.Offset
	Translation *geometry.Offset
	GuideID     string
	Bias        DirectionBias
}

// Plan is the resolved motion for a request.
type Plan struct {
	From     geometry.Offset
	To       geometry.Offset
	Duration time.Duration
	// GuideX and GuideY hold the id of the guide chosen per axis, or ""
	// when the axis resolved to the free-scroll position.
	GuideX string
	GuideY string
}

// Distance returns the largest per-axis travel of the plan.
func (p Plan) Distance() float64 {
	return math.Max(math.Abs(p.To.X-p.From.X), math.Abs(p.To.Y-p.From.Y))
}

// MotionPlanner resolves scroll requests into clamped destinations.
type MotionPlanner struct {
	Tolerance        float64
	DecelerationRate float64
	MaxDuration      time.Duration
	Axes             geometry.Axes
}

// PlanInput is the stack state a plan reads.
type PlanInput struct {
	// Current is the position on both axes after any in-flight motion has
	// been frozen at its literal value.
	Current   geometry.Offset
	Content   geometry.Size
	Container geometry.Size
	Guides    []SnapGuide
}

// Plan resolves req. It reports false when req names a guide id that is not
// present, in which case nothing should move.
func (m MotionPlanner) Plan(in PlanInput, req ScrollRequest) (Plan, bool) {
	candidates := in.Guides
	if req.GuideID != "" {
		candidates = slices.DeleteFunc(slices.Clone(in.Guides), func(g SnapGuide) bool {
			return g.ID != req.GuideID
		})
		if len(candidates) == 0 {
			return Plan{}, false
		}
	}

	projected := in.Current
	switch {
	case req.Position != nil:
		projected = *req.Position
	case req.Translation != nil:
		projected = in.Current.Add(*req.Translation)
	}

	plan := Plan{From: in.Current, To: in.Current}
	for _, axis := range geometry.Each {
		if !m.Axes.Has(axis) {
			continue
		}
		current := in.Current.Component(axis)
		target := projected.Component(axis)

		guideID := ""
		if g, value, ok := nearestGuide(candidates, axis, target, current, req.Bias.axis(axis)); ok {
			if req.GuideID != "" || math.Abs(value-target) <= m.Tolerance {
				target = value
				guideID = g.ID
			}
		}

		min, max := scrollWindow(in.Content.AsOffset().Component(axis), in.Container.AsOffset().Component(axis))
		target = geometry.Clamp(target, min, max)
		if !geometry.IsFinite(target) {
			target = geometry.Clamp(current, min, max)
		}

		plan.To = plan.To.With(axis, target)
		if axis == geometry.AxisX {
			plan.GuideX = guideID
		} else {
			plan.GuideY = guideID
		}
	}
	plan.Duration = m.duration(plan.Distance())
	return plan, true
}

// duration grows with the square root of the distance so that short and
// long settles feel like the same speed.
func (m MotionPlanner) duration(distance float64) time.Duration {
	if !(m.DecelerationRate > 0) || !geometry.IsFinite(distance) {
		return 0
	}
	seconds := (math.Sqrt(distance+1) - 1) / (10 * m.DecelerationRate)
	d := time.Duration(seconds * float64(time.Second))
	if d < 0 {
		return 0
	}
	if d > m.MaxDuration {
		return m.MaxDuration
	}
	return d
}

// nearestGuide picks the best guide on one axis. Guides without a value on
// the axis rank last. With a bias, guides behind current (relative to the
// bias) rank after the guides ahead of it. Ties keep insertion order.
func nearestGuide(guides []SnapGuide, axis geometry.Axis, projected, current float64, bias Bias) (SnapGuide, float64, bool) {
	type ranked struct {
		guide    SnapGuide
		value    float64
		has      bool
		behind   bool
		distance float64
	}
	ranks := make([]ranked, 0, len(guides))
	for _, g := range guides {
		value, has := g.Value(axis)
		r := ranked{guide: g, value: value, has: has, distance: math.Abs(value - projected)}
		switch bias {
		case BiasForward:
			r.behind = value < current
		case BiasBackward:
			r.behind = value > current
		}
		ranks = append(ranks, r)
	}
	slices.SortStableFunc(ranks, func(a, b ranked) int {
		if a.has != b.has {
			if a.has {
				return -1
			}
			return 1
		}
		if a.behind != b.behind {
			if b.behind {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.distance, b.distance)
	})
	if len(ranks) == 0 || !ranks[0].has {
		return SnapGuide{}, 0, false
	}
	return ranks[0].guide, ranks[0].value, true
}
