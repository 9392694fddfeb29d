package scroll

import (
	"slices"

	"github.com/go-drift/snapscroll/pkg/geometry"
)

// Frame edge guide ids. Leading puts the content's top-left edge on the
// container's; trailing does the same for the bottom-right edges.
const (
	GuideLeading  = "frame.leading"
	GuideTrailing = "frame.trailing"
)

// SnapGuide is a candidate stop position. A nil axis value means the guide
// does not constrain that axis.
type SnapGuide struct {
	ID string
	X  *float64
	Y  *float64
}

// NewGuide returns a guide with values on the given axes of v.
func NewGuide(id string, v geometry.Offset, axes geometry.Axes) SnapGuide {
	g := SnapGuide{ID: id}
	if axes.Has(geometry.AxisX) {
		x := v.X
		g.X = &x
	}
	if axes.Has(geometry.AxisY) {
		y := v.Y
		g.Y = &y
	}
	return g
}

// Value returns the guide's value on axis and whether it has one.
func (g SnapGuide) Value(axis geometry.Axis) (float64, bool) {
	p := g.X
	if axis == geometry.AxisY {
		p = g.Y
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Equal reports identity: same id and same values on both axes.
func (g SnapGuide) Equal(other SnapGuide) bool {
	return g.ID == other.ID && equalOptional(g.X, other.X) && equalOptional(g.Y, other.Y)
}

func equalOptional(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// GuideSet is an insertion-ordered set of guides with unique ids.
type GuideSet struct {
	guides []SnapGuide
}

// Add inserts g unless a guide with the same id is already present.
// The first guide seen for an id wins.
func (s *GuideSet) Add(g SnapGuide) bool {
	if slices.ContainsFunc(s.guides, func(existing SnapGuide) bool { return existing.ID == g.ID }) {
		return false
	}
	s.guides = append(s.guides, g)
	return true
}

// Clear removes every guide.
func (s *GuideSet) Clear() {
	s.guides = nil
}

// Len returns the number of guides.
func (s GuideSet) Len() int {
	return len(s.guides)
}

// Lookup returns the guide with the given id.
func (s GuideSet) Lookup(id string) (SnapGuide, bool) {
	for _, g := range s.guides {
		if g.ID == id {
			return g, true
		}
	}
	return SnapGuide{}, false
}

// All returns a copy of the guides in insertion order.
func (s GuideSet) All() []SnapGuide {
	return slices.Clone(s.guides)
}

// Equal reports whether both sets hold equal guides in the same order.
func (s GuideSet) Equal(other GuideSet) bool {
	return slices.EqualFunc(s.guides, other.guides, SnapGuide.Equal)
}

// GuideInput is everything a guide rebuild reads.
type GuideInput struct {
	Content   geometry.Rect
	Container geometry.Rect
	// Literal and Static are the positions on both axes; their difference
	// is the in-flight animation displacement present in measured anchors.
	Literal geometry.Offset
	Static  geometry.Offset
	Anchors []AnchorDescriptor
}

// GuideBuilder turns frame edges and anchors into the guides of one stack.
type GuideBuilder struct {
	StackID string
}

// Build computes the guides for in. The result depends only on in, so
// rebuilding from unchanged input yields an equal set.
func (b GuideBuilder) Build(in GuideInput) GuideSet {
	var set GuideSet

	minX, _ := scrollWindow(in.Content.Width(), in.Container.Width())
	minY, _ := scrollWindow(in.Content.Height(), in.Container.Height())
	set.Add(NewGuide(GuideLeading, geometry.Offset{}, geometry.AllAxes))
	set.Add(NewGuide(GuideTrailing, geometry.Offset{X: minX, Y: minY}, geometry.AllAxes))

	shift := in.Literal.Sub(in.Static)
	container := in.Container.Size().AsOffset()
	for _, anchor := range in.Anchors {
		if anchor.StackID != b.StackID {
			continue
		}
		rect := ResolveAnchor(anchor, in.Content, in.Container, shift)
		origin := rect.Origin().Sub(shift)
		size := rect.Size().AsOffset()
		for _, conf := range anchor.Configurations {
			positionOffset := size.Mul(conf.UnitPosition)
			alignmentOffset := container.Mul(conf.Alignment)
			value := geometry.Offset{}.Sub(origin).Sub(positionOffset).Add(alignmentOffset)
			set.Add(NewGuide(conf.ID, value, conf.Axes))
		}
	}
	return set
}
