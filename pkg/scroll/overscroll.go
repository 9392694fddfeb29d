package scroll

import (
	"math"

	"github.com/go-drift/snapscroll/pkg/geometry"
)

// scrollWindow returns the allowed position range for content of the given
// extent inside a container of the given extent. Positions are content
// translations, so scrolling toward the end moves them negative.
func scrollWindow(content, container float64) (min, max float64) {
	overflow := content - container
	if !(overflow > 0) {
		return 0, 0
	}
	return -overflow, 0
}

// OverscrollModel computes the rubber-band translation applied while a drag
// pushes content past its scroll limits.
type OverscrollModel struct {
	// Elasticity is the damping exponent in (0, 1]. 1 disables damping.
	Elasticity float64
}

// Translate returns the translation to apply for a requested translation t
// from position p, with content extent c inside container extent w.
//
// Inside the scroll window the translation passes through unchanged. Past an
// edge the excess x is replaced by (x+1)^Elasticity - 1: close to linear for a
// few pixels, increasingly resistant after that.
func (m OverscrollModel) Translate(c, w, p, t float64) float64 {
	e := geometry.Clamp(m.Elasticity, math.SmallestNonzeroFloat64, 1)
	if math.IsNaN(m.Elasticity) {
		e = 1
	}
	min, max := scrollWindow(c, w)
	proposed := p + t
	switch {
	case proposed > max:
		return max + damp(proposed-max, e) - p
	case proposed < min:
		return min - damp(min-proposed, e) - p
	default:
		return t
	}
}

func damp(excess, elasticity float64) float64 {
	return math.Pow(excess+1, elasticity) - 1
}
