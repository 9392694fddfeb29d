package scroll_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/snapscroll/pkg/animation"
	"github.com/go-drift/snapscroll/pkg/config"
	"github.com/go-drift/snapscroll/pkg/errors"
	"github.com/go-drift/snapscroll/pkg/geometry"
	"github.com/go-drift/snapscroll/pkg/scroll"
	drifttest "github.com/go-drift/snapscroll/pkg/testing"
)

type recordingHandler struct {
	errors []*errors.ScrollError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.ScrollError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)  { h.panics = append(h.panics, err) }

func (h *recordingHandler) kinds() []errors.ErrorKind {
	kinds := make([]errors.ErrorKind, 0, len(h.errors))
	for _, err := range h.errors {
		kinds = append(kinds, err.Kind)
	}
	return kinds
}

func recordErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

var (
	feedContent   = geometry.Size{Width: 320, Height: 2000}
	feedContainer = geometry.Size{Width: 320, Height: 480}
)

func newFeed(t *testing.T, cfg config.Config, opts ...scroll.Option) *drifttest.StackTester {
	t.Helper()
	tester := drifttest.NewStackTesterWithT(t, "feed", cfg, opts...)
	tester.SetSizes(feedContent, feedContainer)
	return tester
}

func registerSection(stack *scroll.Stack, id string, top float64) *scroll.AnchorHandle {
	return stack.Anchors().Register(scroll.AnchorDescriptor{
		StackID:    stack.ID(),
		SourceRect: geometry.RectFromLTWH(0, top, 320, 200),
		Configurations: []scroll.AnchorConfiguration{{
			ID:   id,
			Axes: geometry.AxisY,
		}},
	})
}

func guideIDs(stack *scroll.Stack) []string {
	var ids []string
	for _, g := range stack.Guides() {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestStack_InitialState(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	assert.Equal(t, geometry.Offset{}, stack.Offset())
	assert.Equal(t, scroll.StateIdle, stack.GestureState())
	assert.False(t, stack.IsSettling())
	assert.Equal(t, []string{scroll.GuideLeading, scroll.GuideTrailing}, guideIDs(stack))
	assert.Equal(t, scroll.CoordinateSpace("scroll.feed"), stack.CoordinateSpace())
}

func TestStack_LayoutMeasuresInOwnSpace(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	var spaces []scroll.CoordinateSpace
	var nodes []scroll.Node
	stack.Layout(scroll.BoundsProviderFunc(func(node scroll.Node, space scroll.CoordinateSpace) geometry.Rect {
		nodes = append(nodes, node)
		spaces = append(spaces, space)
		if node == scroll.NodeContainer {
			return geometry.RectFromLTWH(0, 0, 320, 480)
		}
		return geometry.RectFromLTWH(0, 0, 320, 1480)
	}))

	assert.Equal(t, []scroll.Node{scroll.NodeContent, scroll.NodeContainer}, nodes)
	assert.Equal(t, []scroll.CoordinateSpace{"scroll.feed", "scroll.feed"}, spaces)
	trailing, ok := stack.State().Guides.Lookup(scroll.GuideTrailing)
	require.True(t, ok)
	y, _ := trailing.Value(geometry.AxisY)
	assert.Equal(t, -1000.0, y)
}

func TestStack_NonFiniteBoundsAreIgnored(t *testing.T) {
	h := recordErrors(t)
	tester := newFeed(t, config.Default())
	stack := tester.Stack()
	before := stack.State().ContentBounds

	stack.UpdateBounds(geometry.Rect{Right: math.Inf(1), Bottom: 100}, geometry.RectFromLTWH(0, 0, 320, 480))

	assert.Equal(t, before, stack.State().ContentBounds)
	assert.Equal(t, []errors.ErrorKind{errors.KindGeometry}, h.kinds())
}

func TestStack_InvalidConfigIsSanitized(t *testing.T) {
	h := recordErrors(t)
	cfg := config.Default()
	cfg.Elasticity = -2
	cfg.Tolerance = math.NaN()

	tester := newFeed(t, cfg)

	assert.Equal(t, config.Default().Elasticity, tester.Stack().Config().Elasticity)
	assert.Equal(t, config.Default().Tolerance, tester.Stack().Config().Tolerance)
	assert.Equal(t, []errors.ErrorKind{errors.KindConfig}, h.kinds())
}

func TestStack_AnchorsBecomeGuides(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	handle := registerSection(stack, "section.2", 600)
	stack.Anchors().Register(scroll.AnchorDescriptor{
		StackID:        "sidebar",
		SourceRect:     geometry.RectFromLTWH(0, 300, 320, 200),
		Configurations: []scroll.AnchorConfiguration{{ID: "foreign", Axes: geometry.AxisY}},
	})
	assert.Equal(t, []string{scroll.GuideLeading, scroll.GuideTrailing, "section.2"}, guideIDs(stack))

	handle.Update(scroll.AnchorDescriptor{
		StackID:        "feed",
		SourceRect:     geometry.RectFromLTWH(0, 900, 320, 200),
		Configurations: []scroll.AnchorConfiguration{{ID: "section.2", Axes: geometry.AxisY}},
	})
	g, ok := stack.State().Guides.Lookup("section.2")
	require.True(t, ok)
	y, _ := g.Value(geometry.AxisY)
	assert.Equal(t, -900.0, y)

	handle.Unregister()
	assert.Equal(t, []string{scroll.GuideLeading, scroll.GuideTrailing}, guideIDs(stack))
}

func TestStack_GuidesStableDuringAnimation(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()
	registerSection(stack, "section.2", 600)
	before := stack.State().Guides

	require.True(t, stack.ScrollToPosition(geometry.Offset{Y: -1000}))
	tester.PumpFor(200 * time.Millisecond)
	require.True(t, stack.IsSettling())

	stack.Layout(scroll.StaticBounds{
		Content:   geometry.RectFromLTWH(0, 0, 320, 2000),
		Container: geometry.RectFromLTWH(0, 0, 320, 480),
	})
	after := stack.State().Guides
	assert.True(t, before.Equal(after))
}

func TestStack_ScrollToPositionSnapsAndSettles(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()
	registerSection(stack, "section.2", 600)

	require.True(t, stack.ScrollToPosition(geometry.Offset{Y: -620}))
	assert.Equal(t, -600.0, stack.Target().Y)
	assert.Equal(t, "section.2", stack.LastPlan().GuideY)
	assert.True(t, stack.IsSettling())

	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	assert.Equal(t, geometry.Offset{Y: -600}, stack.Offset())
	assert.False(t, stack.IsSettling())
}

func TestStack_ScrollToGuide(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	require.True(t, stack.ScrollToGuide(scroll.GuideTrailing))
	require.NoError(t, tester.PumpAndSettle(2*time.Second))

	assert.Equal(t, -1520.0, stack.Offset().Y)
}

func TestStack_UnknownGuideLeavesMotionAlone(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	require.True(t, stack.ScrollToPosition(geometry.Offset{Y: -700}))
	tester.PumpFor(100 * time.Millisecond)
	target := stack.Target()

	assert.False(t, stack.ScrollToGuide("missing"))
	assert.True(t, stack.IsSettling())
	assert.Equal(t, target, stack.Target())

	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	assert.Equal(t, -700.0, stack.Offset().Y)
}

func TestStack_RetargetStartsFromLiteral(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	require.True(t, stack.ScrollToPosition(geometry.Offset{Y: -1000}))
	tester.PumpFor(160 * time.Millisecond)
	literal := stack.Offset().Y
	require.Less(t, literal, 0.0)
	require.Greater(t, literal, -1000.0)

	require.True(t, stack.ScrollToPosition(geometry.Offset{Y: -300}))

	assert.Equal(t, literal, stack.LastPlan().From.Y)
	assert.Equal(t, literal, stack.State().PositionY.Cache())
	assert.Equal(t, -300.0, stack.Target().Y)
	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	assert.Equal(t, -300.0, stack.Offset().Y)
}

func TestStack_ScrollByUsesDirectionBias(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()
	stack.ScrollToPosition(geometry.Offset{Y: -300})
	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	require.Equal(t, -300.0, stack.Offset().Y)

	registerSection(stack, "ahead", 255)
	registerSection(stack, "behind", 340)

	// "behind" is nearer to -299, but the nudge heads forward.
	stack.ScrollBy(geometry.Offset{Y: 1})
	assert.Equal(t, "ahead", stack.LastPlan().GuideY)
	assert.Equal(t, -255.0, stack.Target().Y)
}

func TestStack_EquidistantGuidesFollowBias(t *testing.T) {
	tests := []struct {
		bias scroll.Bias
		want string
	}{
		{scroll.BiasForward, "ahead"},
		{scroll.BiasBackward, "behind"},
	}
	for _, tt := range tests {
		t.Run(tt.bias.String(), func(t *testing.T) {
			tester := newFeed(t, config.Default())
			stack := tester.Stack()
			stack.ScrollToPosition(geometry.Offset{Y: -300})
			require.NoError(t, tester.PumpAndSettle(2*time.Second))

			registerSection(stack, "behind", 350)
			registerSection(stack, "ahead", 250)
			require.True(t, stack.ScrollTo(scroll.ScrollRequest{Bias: scroll.DirectionBias{Y: tt.bias}}))

			assert.Equal(t, tt.want, stack.LastPlan().GuideY)
		})
	}
}

func TestStack_ZeroDecelerationSettlesImmediately(t *testing.T) {
	cfg := config.Default()
	cfg.DecelerationRate = 0
	tester := newFeed(t, cfg)
	stack := tester.Stack()

	require.True(t, stack.ScrollToPosition(geometry.Offset{Y: -800}))

	assert.Equal(t, -800.0, stack.Offset().Y)
	assert.False(t, stack.IsSettling())
	assert.False(t, tester.Scheduler().HasActiveTickers())
	assert.Equal(t, time.Duration(0), stack.LastPlan().Duration)
}

func TestStack_ListenersAndUnsubscribe(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	calls := 0
	remove := stack.AddListener(func() { calls++ })
	stack.ScrollToPosition(geometry.Offset{Y: -400})
	tester.PumpFor(100 * time.Millisecond)
	assert.Greater(t, calls, 1)

	remove()
	seen := calls
	tester.PumpFor(100 * time.Millisecond)
	assert.Equal(t, seen, calls)
}

func TestStack_PanickingListenerIsRecovered(t *testing.T) {
	h := recordErrors(t)
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	calls := 0
	stack.AddListener(func() { panic("bad listener") })
	stack.AddListener(func() { calls++ })

	stack.ScrollBy(geometry.Offset{Y: -100})

	require.NotEmpty(t, h.panics)
	assert.Equal(t, "scroll.Stack.notify", h.panics[0].Op)
	assert.Greater(t, calls, 0, "other listeners still run")
	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	assert.Equal(t, -100.0, stack.Offset().Y)
}

func TestStack_StateIsACopy(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()

	state := stack.State()
	state.Guides.Clear()
	state.PositionY.Jump(-50)

	assert.Equal(t, 2, stack.State().Guides.Len())
	assert.Equal(t, 0.0, stack.Offset().Y)
}

func TestStack_DisposeStopsEverything(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()
	calls := 0
	stack.AddListener(func() { calls++ })

	stack.ScrollToPosition(geometry.Offset{Y: -900})
	stack.Dispose()
	calls = 0

	assert.False(t, tester.Scheduler().HasActiveTickers())
	assert.False(t, stack.IsSettling())
	stack.HandleGesture(scroll.GestureEvent{Phase: scroll.PhaseChanged, Translation: geometry.Offset{Y: -10}})
	tester.PumpFor(100 * time.Millisecond)
	assert.Equal(t, 0, calls)
	assert.Equal(t, scroll.StateIdle, stack.GestureState())
}

func TestStack_AnchorChangesAfterDisposeAreIgnored(t *testing.T) {
	tester := newFeed(t, config.Default())
	stack := tester.Stack()
	handle := registerSection(stack, "section.2", 600)
	want := guideIDs(stack)

	stack.Dispose()
	handle.Update(scroll.AnchorDescriptor{StackID: stack.ID()})
	handle.Unregister()
	registerSection(stack, "section.3", 900)

	assert.Equal(t, want, guideIDs(stack))
}

func TestStack_SingleAxis(t *testing.T) {
	cfg := config.Default()
	cfg.AxesName = "y"
	tester := drifttest.NewStackTesterWithT(t, "feed", cfg)
	tester.SetSizes(geometry.Size{Width: 1000, Height: 2000}, feedContainer)
	stack := tester.Stack()

	tester.Drag(geometry.Offset{X: -200, Y: -200})
	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	assert.Equal(t, geometry.Offset{Y: -200}, stack.Offset())

	stack.ScrollToPosition(geometry.Offset{X: -500, Y: -900})
	require.NoError(t, tester.PumpAndSettle(2*time.Second))
	assert.Equal(t, geometry.Offset{Y: -900}, stack.Offset())
}

func TestStack_ExplicitScheduler(t *testing.T) {
	clock := drifttest.NewFakeClock()
	scheduler := animation.NewScheduler(clock)
	stack := scroll.NewStack("explicit", config.Default(), scheduler)
	defer stack.Dispose()
	stack.UpdateBounds(geometry.RectFromLTWH(0, 0, 320, 2000), geometry.RectFromLTWH(0, 0, 320, 480))

	stack.ScrollToPosition(geometry.Offset{Y: -500})
	for range 100 {
		clock.Advance(16 * time.Millisecond)
		scheduler.Step()
	}

	assert.Equal(t, -500.0, stack.Offset().Y)
}
