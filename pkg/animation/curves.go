package animation

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Curve maps linear progress in [0, 1] to eased progress. Pass one to
// [Driver.Animate] to shape a motion.
type Curve func(t float64) float64

// LinearCurve applies no easing.
func LinearCurve(t float64) float64 {
	return t
}

var (
	// DecelerateCurve is a steep ease-out close to the one native scroll
	// views use when settling onto a snap point.
	DecelerateCurve = CubicBezier(0.22, 1.0, 0.36, 1.0)
	// Ease matches CSS ease.
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseIn matches CSS ease-in.
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)
	// EaseOut matches CSS ease-out. It is the settle curve by default.
	EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)
	// EaseInOut matches CSS ease-in-out.
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// namedCurves is keyed by normalized name.
var namedCurves = map[string]Curve{
	"linear":     LinearCurve,
	"ease":       Ease,
	"easein":     EaseIn,
	"easeout":    EaseOut,
	"easeinout":  EaseInOut,
	"decelerate": DecelerateCurve,
}

var nameNormalizer = strings.NewReplacer("-", "", "_", "", " ", "")

// CurveByName resolves a configuration name such as "easeOut", "ease-in-out"
// or "linear". Case, hyphens and underscores are ignored, and an empty name
// is EaseOut.
func CurveByName(name string) (Curve, error) {
	key := nameNormalizer.Replace(strings.ToLower(name))
	if key == "" {
		return EaseOut, nil
	}
	if c, ok := namedCurves[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown curve %q (known: %s)", name, strings.Join(CurveNames(), ", "))
}

// CurveNames lists the normalized names CurveByName accepts, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CubicBezier returns the easing of CSS cubic-bezier(x1, y1, x2, y2): a curve
// from (0,0) to (1,1) with control points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	bx := bezier{p1: x1, p2: x2}
	by := bezier{p1: y1, p2: y2}
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return by.at(bx.solve(t))
	}
}

// bezier is one coordinate of a cubic bezier with end points 0 and 1.
type bezier struct {
	p1, p2 float64
}

const bezierEpsilon = 1e-7

func (b bezier) at(u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*b.p1 + 3*inv*u*u*b.p2 + u*u*u
}

func (b bezier) slope(u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*b.p1 + 6*inv*u*(b.p2-b.p1) + 3*u*u*(1-b.p2)
}

// solve finds the parameter u in [0, 1] where the coordinate equals x.
// Newton steps usually converge; bisection covers flat spots.
func (b bezier) solve(x float64) float64 {
	u := x
	for range 8 {
		diff := b.at(u) - x
		if math.Abs(diff) < bezierEpsilon {
			return min(max(u, 0), 1)
		}
		d := b.slope(u)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		u -= diff / d
	}

	lo, hi := 0.0, 1.0
	u = min(max(u, 0), 1)
	for range 20 {
		diff := b.at(u) - x
		if math.Abs(diff) < bezierEpsilon {
			break
		}
		if diff > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}
