package scroll

import (
	"slices"

	"github.com/go-drift/snapscroll/pkg/geometry"
)

// AnchorConfiguration describes one snap point derived from an anchor.
type AnchorConfiguration struct {
	// ID names the guide. The first guide registered under an id wins.
	ID string
	// UnitPosition picks the point inside the anchor that snaps, as a
	// fraction of the anchor size: (0, 0) is its top-left corner and
	// (0.5, 0.5) its center.
	UnitPosition geometry.Offset
	// Alignment picks where in the container that point lands, as a
	// fraction of the container size.
	Alignment geometry.Offset
	// Axes lists the axes the guide constrains.
	Axes geometry.Axes
}

// AnchorDescriptor is declared by content to publish snap points.
type AnchorDescriptor struct {
	// SourceRect is the anchor's frame relative to the content's origin.
	SourceRect geometry.Rect
	// Configurations lists the guides this anchor produces.
	Configurations []AnchorConfiguration
	// StackID is the owning stack. Descriptors for other stacks are ignored.
	StackID string
}

// ResolveAnchor returns the anchor's rect in the container's coordinate space
// as a bounds provider would measure it while an animation displaces the
// content by shift.
func ResolveAnchor(anchor AnchorDescriptor, content, container geometry.Rect, shift geometry.Offset) geometry.Rect {
	inset := content.Origin().Sub(container.Origin())
	return anchor.SourceRect.Translate(inset.Add(shift))
}

// AnchorHandle is returned by [AnchorRegistry.Register]. Content keeps it to
// move or withdraw its anchor.
type AnchorHandle struct {
	registry   *AnchorRegistry
	descriptor AnchorDescriptor
	removed    bool
}

// Update replaces the descriptor, keeping its registration order.
func (h *AnchorHandle) Update(desc AnchorDescriptor) {
	if h.removed {
		return
	}
	h.descriptor = desc
	h.registry.changed()
}

// Unregister withdraws the anchor. Calling it twice is harmless.
func (h *AnchorHandle) Unregister() {
	if h.removed {
		return
	}
	h.removed = true
	r := h.registry
	if i := slices.Index(r.handles, h); i >= 0 {
		r.handles = slices.Delete(r.handles, i, i+1)
	}
	r.changed()
}

// AnchorRegistry collects the anchors declared by a stack's content.
type AnchorRegistry struct {
	handles  []*AnchorHandle
	onChange func()
	batch    int
	dirty    bool
}

// NewAnchorRegistry creates a registry that calls onChange after every
// registration, update or removal.
func NewAnchorRegistry(onChange func()) *AnchorRegistry {
	return &AnchorRegistry{onChange: onChange}
}

// Register adds an anchor.
func (r *AnchorRegistry) Register(desc AnchorDescriptor) *AnchorHandle {
	h := &AnchorHandle{registry: r, descriptor: desc}
	r.handles = append(r.handles, h)
	r.changed()
	return h
}

// Batch runs fn with change notifications held back, then notifies once
// if anything changed. Use it when a layout pass re-declares many anchors.
func (r *AnchorRegistry) Batch(fn func()) {
	r.batch++
	fn()
	r.batch--
	if r.batch == 0 && r.dirty {
		r.dirty = false
		r.notify()
	}
}

// Descriptors returns the registered descriptors in registration order.
func (r *AnchorRegistry) Descriptors() []AnchorDescriptor {
	out := make([]AnchorDescriptor, 0, len(r.handles))
	for _, h := range r.handles {
		out = append(out, h.descriptor)
	}
	return out
}

// Len returns the number of registered anchors.
func (r *AnchorRegistry) Len() int {
	return len(r.handles)
}

func (r *AnchorRegistry) changed() {
	if r.batch > 0 {
		r.dirty = true
		return
	}
	r.notify()
}

func (r *AnchorRegistry) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}
