package scroll

import (
	"fmt"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/go-drift/snapscroll/pkg/animation"
	"github.com/go-drift/snapscroll/pkg/config"
	"github.com/go-drift/snapscroll/pkg/errors"
	"github.com/go-drift/snapscroll/pkg/geometry"
)

// StackState is the mutable state of one scroll stack.
type StackState struct {
	ContentBounds   geometry.Rect
	ContainerBounds geometry.Rect
	Guides          GuideSet
	PositionX       AnimatedScalar
	PositionY       AnimatedScalar
	// LiveTranslation is the uncommitted drag offset, zero outside a drag.
	LiveTranslation geometry.Offset
}

// Stack is one scroll view: content that moves inside a fixed container,
// snapping to guides when it settles.
//
// A Stack is not safe for concurrent use. Layout, gestures, scroll requests
// and scheduler steps must all happen on one goroutine.
type Stack struct {
	id        string
	config    config.Config
	axes      geometry.Axes
	curve     animation.Curve
	scheduler *animation.Scheduler

	state   StackState
	builder GuideBuilder
	planner MotionPlanner
	reactor *GestureReactor
	anchors *AnchorRegistry
	drivers [2]*animation.Driver

	listeners      map[int]func()
	nextListenerID int

	tracer oteltrace.Tracer
	span   oteltrace.Span

	// moving is set from the start of a settle until it completes or is
	// cancelled. planning suppresses completion while drivers are started.
	moving   bool
	planning bool
	lastPlan Plan
	disposed bool
}

// NewStack creates a stack resting at the origin. An invalid cfg is
// reported and its bad fields replaced by defaults.
func NewStack(id string, cfg config.Config, scheduler *animation.Scheduler, opts ...Option) *Stack {
	cfg, err := cfg.Sanitized()
	if err != nil {
		errors.Report(&errors.ScrollError{
			Op:    "scroll.NewStack",
			Kind:  errors.KindConfig,
			Stack: id,
			Err:   err,
		})
	}
	if scheduler == nil {
		scheduler = animation.NewScheduler(nil)
	}

	s := &Stack{
		id:        id,
		config:    cfg,
		axes:      cfg.Axes(),
		curve:     cfg.Curve(),
		scheduler: scheduler,
		builder:   GuideBuilder{StackID: id},
		planner: MotionPlanner{
			Tolerance:        cfg.Tolerance,
			DecelerationRate: cfg.DecelerationRate,
			MaxDuration:      cfg.MaxDuration,
			Axes:             cfg.Axes(),
		},
		listeners: make(map[int]func()),
	}
	s.state.PositionX = NewAnimatedScalar(0)
	s.state.PositionY = NewAnimatedScalar(0)
	s.reactor = newGestureReactor(s, OverscrollModel{Elasticity: cfg.Elasticity})
	s.anchors = NewAnchorRegistry(s.rebuildGuides)

	for i, axis := range geometry.Each {
		driver := animation.NewDriver(scheduler)
		driver.AddListener(func(v float64) {
			s.position(axis).SetLiteral(v)
			s.notify()
		})
		driver.AddStatusListener(func(status animation.Status) {
			if status == animation.StatusCompleted {
				s.driverCompleted()
			}
		})
		s.drivers[i] = driver
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = defaultTracer()
	}

	s.rebuildGuides()
	return s
}

// ID returns the stack id.
func (s *Stack) ID() string {
	return s.id
}

// Config returns the sanitized configuration in use.
func (s *Stack) Config() config.Config {
	return s.config
}

// CoordinateSpace returns the space this stack measures its nodes in.
func (s *Stack) CoordinateSpace() CoordinateSpace {
	return CoordinateSpace("scroll." + s.id)
}

// Anchors returns the registry content uses to publish snap anchors.
func (s *Stack) Anchors() *AnchorRegistry {
	return s.anchors
}

// Offset returns the translation to render the content at: the animated
// position plus any live drag translation.
func (s *Stack) Offset() geometry.Offset {
	return geometry.Offset{
		X: s.state.PositionX.Literal() + s.state.LiveTranslation.X,
		Y: s.state.PositionY.Literal() + s.state.LiveTranslation.Y,
	}
}

// Target returns where the stack is headed, ignoring any live drag.
func (s *Stack) Target() geometry.Offset {
	return geometry.Offset{X: s.state.PositionX.Target(), Y: s.state.PositionY.Target()}
}

// Guides returns the current guides in insertion order.
func (s *Stack) Guides() []SnapGuide {
	return s.state.Guides.All()
}

// State returns a copy of the stack state.
func (s *Stack) State() StackState {
	st := s.state
	st.Guides = GuideSet{guides: s.state.Guides.All()}
	return st
}

// GestureState returns the gesture reactor's state.
func (s *Stack) GestureState() GestureState {
	return s.reactor.State()
}

// DragOrigin returns where the current or last drag started.
func (s *Stack) DragOrigin() geometry.Offset {
	return s.reactor.Origin()
}

// IsSettling reports whether a planned motion is in flight.
func (s *Stack) IsSettling() bool {
	return s.moving
}

// LastPlan returns the most recent plan that started a motion.
func (s *Stack) LastPlan() Plan {
	return s.lastPlan
}

// Layout measures the content and container through p and applies them.
func (s *Stack) Layout(p BoundsProvider) {
	if s.disposed {
		return
	}
	space := s.CoordinateSpace()
	s.UpdateBounds(p.Measure(NodeContent, space), p.Measure(NodeContainer, space))
}

// UpdateBounds applies new content and container bounds and rebuilds the
// guides. Non-finite bounds are reported and ignored.
func (s *Stack) UpdateBounds(content, container geometry.Rect) {
	if s.disposed {
		return
	}
	for _, b := range []struct {
		node Node
		rect geometry.Rect
	}{{NodeContent, content}, {NodeContainer, container}} {
		if !b.rect.IsFinite() {
			errors.Reportf("scroll.Stack.UpdateBounds", errors.KindGeometry, s.id,
				"non-finite %s bounds %v, keeping %v", b.node, b.rect, s.bounds(b.node))
			return
		}
	}
	s.state.ContentBounds = content
	s.state.ContainerBounds = container
	s.rebuildGuides()
}

func (s *Stack) bounds(node Node) geometry.Rect {
	if node == NodeContainer {
		return s.state.ContainerBounds
	}
	return s.state.ContentBounds
}

// HandleGesture forwards a drag event to the gesture reactor.
func (s *Stack) HandleGesture(ev GestureEvent) {
	if s.disposed {
		return
	}
	s.reactor.Handle(ev)
}

// SetForeground tells the stack whether the app is in the foreground.
func (s *Stack) SetForeground(foreground bool) {
	if s.disposed {
		return
	}
	s.reactor.SetForeground(foreground)
}

// ScrollTo plans and starts a motion for req. It reports whether anything
// started moving. Any motion in flight is halted first, except when req
// names an unknown guide: that request does nothing at all and leaves a
// running motion untouched.
func (s *Stack) ScrollTo(req ScrollRequest) bool {
	if s.disposed {
		return false
	}
	started := s.planAndAnimate(req)
	s.notify()
	return started
}

// ScrollToPosition scrolls to p, snapping to a guide within tolerance.
func (s *Stack) ScrollToPosition(p geometry.Offset) bool {
	return s.ScrollTo(ScrollRequest{Position: &p})
}

// ScrollBy scrolls by d from the current target.
func (s *Stack) ScrollBy(d geometry.Offset) bool {
	return s.ScrollTo(ScrollRequest{Translation: &d, Bias: DirectionBias{X: BiasOf(d.X), Y: BiasOf(d.Y)}})
}

// ScrollToGuide scrolls to the guide with the given id.
func (s *Stack) ScrollToGuide(id string) bool {
	return s.ScrollTo(ScrollRequest{GuideID: id})
}

// AddListener registers fn to be called after every state change.
// Returns an unsubscribe function.
func (s *Stack) AddListener(fn func()) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// Dispose stops all motion and drops listeners. The stack ignores every
// call afterwards.
func (s *Stack) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, d := range s.drivers {
		d.Dispose()
	}
	if s.moving {
		s.moving = false
		s.endSpan(OutcomeDisposed)
	}
	s.listeners = map[int]func(){}
}

func (s *Stack) String() string {
	return fmt.Sprintf("Stack(%s offset=%v gesture=%s)", s.id, s.Offset(), s.reactor.State())
}

func (s *Stack) position(axis geometry.Axis) *AnimatedScalar {
	if axis == geometry.AxisY {
		return &s.state.PositionY
	}
	return &s.state.PositionX
}

func (s *Stack) driver(axis geometry.Axis) *animation.Driver {
	if axis == geometry.AxisY {
		return s.drivers[1]
	}
	return s.drivers[0]
}

func (s *Stack) literal() geometry.Offset {
	return geometry.Offset{X: s.state.PositionX.Literal(), Y: s.state.PositionY.Literal()}
}

func (s *Stack) static() geometry.Offset {
	return geometry.Offset{X: s.state.PositionX.Static(), Y: s.state.PositionY.Static()}
}

func (s *Stack) rebuildGuides() {
	if s.disposed {
		return
	}
	s.state.Guides = s.builder.Build(GuideInput{
		Content:   s.state.ContentBounds,
		Container: s.state.ContainerBounds,
		Literal:   s.literal(),
		Static:    s.static(),
		Anchors:   s.anchors.Descriptors(),
	})
	s.notify()
}

// haltMotion stops the drivers and retargets every axis to where it is now.
func (s *Stack) haltMotion() {
	for _, axis := range geometry.Each {
		s.driver(axis).Stop()
		position := s.position(axis)
		if position.Animating() {
			position.SetTarget(position.Literal())
		}
	}
	if s.moving {
		s.moving = false
		s.endSpan(OutcomeCancelled)
	}
}

// planAndAnimate freezes any motion, plans req from the frozen position and
// starts the drivers. It reports whether a motion was started.
func (s *Stack) planAndAnimate(req ScrollRequest) bool {
	if req.GuideID != "" {
		if _, ok := s.state.Guides.Lookup(req.GuideID); !ok {
			return false
		}
	}
	s.haltMotion()

	plan, ok := s.planner.Plan(PlanInput{
		Current:   s.Target(),
		Content:   s.state.ContentBounds.Size(),
		Container: s.state.ContainerBounds.Size(),
		Guides:    s.state.Guides.All(),
	}, req)
	if !ok || plan.To == plan.From {
		// Whatever was settling has been halted where it is.
		s.reactor.settled()
		return false
	}

	s.moving = true
	s.lastPlan = plan
	s.startSpan(plan)

	s.planning = true
	for _, axis := range geometry.Each {
		from, to := plan.From.Component(axis), plan.To.Component(axis)
		if !s.axes.Has(axis) || from == to {
			continue
		}
		s.position(axis).SetTarget(to)
		s.driver(axis).Animate(from, to, plan.Duration, s.curve)
	}
	s.planning = false

	if !s.anyAnimating() {
		s.finishMotion()
	}
	return true
}

func (s *Stack) anyAnimating() bool {
	return s.drivers[0].IsAnimating() || s.drivers[1].IsAnimating()
}

func (s *Stack) driverCompleted() {
	if s.planning || s.anyAnimating() {
		return
	}
	s.finishMotion()
}

func (s *Stack) finishMotion() {
	if !s.moving {
		return
	}
	s.moving = false
	s.endSpan(OutcomeCompleted)
	s.reactor.settled()
	s.notify()
}

func (s *Stack) notify() {
	for _, fn := range s.listeners {
		s.callListener(fn)
	}
}

func (s *Stack) callListener(fn func()) {
	defer errors.Recover("scroll.Stack.notify")
	fn()
}
