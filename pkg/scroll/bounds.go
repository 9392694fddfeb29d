package scroll

import "github.com/go-drift/snapscroll/pkg/geometry"

// Node identifies the views a stack measures on each layout pass.
type Node int

const (
	// NodeContent is the scrolled content.
	NodeContent Node = iota
	// NodeContainer is the fixed viewport around the content.
	NodeContainer
)

// String returns a human-readable representation of the node.
func (n Node) String() string {
	switch n {
	case NodeContent:
		return "content"
	case NodeContainer:
		return "container"
	default:
		return "unknown"
	}
}

// CoordinateSpace names the space a rect is measured in.
type CoordinateSpace string

// BoundsProvider measures views for the stack. It is implemented by the host
// layout system.
type BoundsProvider interface {
	Measure(node Node, space CoordinateSpace) geometry.Rect
}

// BoundsProviderFunc adapts a function to BoundsProvider.
type BoundsProviderFunc func(node Node, space CoordinateSpace) geometry.Rect

// Measure calls f.
func (f BoundsProviderFunc) Measure(node Node, space CoordinateSpace) geometry.Rect {
	return f(node, space)
}

// StaticBounds is a BoundsProvider returning fixed rects.
type StaticBounds struct {
	Content   geometry.Rect
	Container geometry.Rect
}

// Measure returns the rect stored for node.
func (b StaticBounds) Measure(node Node, _ CoordinateSpace) geometry.Rect {
	if node == NodeContainer {
		return b.Container
	}
	return b.Content
}
