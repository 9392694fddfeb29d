// Package geometry provides the 2D value types shared by the scroll core:
// offsets, sizes, rectangles and axis sets.
package geometry

import (
	"fmt"
	"math"
	"strings"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Mul returns the component-wise product of o and other.
func (o Offset) Mul(other Offset) Offset {
	return Offset{X: o.X * other.X, Y: o.Y * other.Y}
}

// Component returns the value of o along the given axis.
func (o Offset) Component(axis Axis) float64 {
	if axis == AxisY {
		return o.Y
	}
	return o.X
}

// With returns a copy of o with the component along axis replaced by v.
func (o Offset) With(axis Axis, v float64) Offset {
	if axis == AxisY {
		o.Y = v
	} else {
		o.X = v
	}
	return o
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (o Offset) IsFinite() bool {
	return IsFinite(o.X) && IsFinite(o.Y)
}

// Sanitize replaces non-finite components with zero.
func (o Offset) Sanitize() Offset {
	if !IsFinite(o.X) {
		o.X = 0
	}
	if !IsFinite(o.Y) {
		o.Y = 0
	}
	return o
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// AsOffset returns the size as a vector (Width, Height).
func (s Size) AsOffset() Offset {
	return Offset{X: s.Width, Y: s.Height}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// IsFinite reports whether every edge is a finite number.
func (r Rect) IsFinite() bool {
	return IsFinite(r.Left) && IsFinite(r.Top) && IsFinite(r.Right) && IsFinite(r.Bottom)
}

// Translate returns a new rect offset by delta.
func (r Rect) Translate(delta Offset) Rect {
	return Rect{
		Left:   r.Left + delta.X,
		Top:    r.Top + delta.Y,
		Right:  r.Right + delta.X,
		Bottom: r.Bottom + delta.Y,
	}
}

// Axis identifies a single scroll axis. Axis values combine into [Axes].
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AllAxes:
		return "xy"
	case 0:
		return "none"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Axes is a set of axes.
type Axes = Axis

// AllAxes contains both the horizontal and vertical axis.
const AllAxes Axes = AxisX | AxisY

// Each is the fixed iteration order over single axes.
var Each = [...]Axis{AxisX, AxisY}

// Has reports whether the set contains axis.
func (a Axis) Has(axis Axis) bool {
	return a&axis != 0
}

// ParseAxes parses "x", "y", "xy" (or "both") into an axis set.
func ParseAxes(s string) (Axes, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "horizontal":
		return AxisX, nil
	case "y", "vertical":
		return AxisY, nil
	case "xy", "both", "":
		return AllAxes, nil
	default:
		return 0, fmt.Errorf("unknown axes %q", s)
	}
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NearlyEqual returns true if two values are within a small tolerance.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
