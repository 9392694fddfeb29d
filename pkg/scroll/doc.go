// Package scroll implements the physics of a snapping scroll view.
//
// A [Stack] owns the position of some content inside a fixed container. It
// never draws anything: the host measures views, feeds drag events in, steps
// an [animation.Scheduler] once per frame, and renders the content translated
// by [Stack.Offset].
//
// # Core Components
//
//   - [AnimatedScalar]: the per-axis position with its target, the target
//     before the last change, and the value currently on screen.
//
//   - [AnchorRegistry] and [GuideBuilder]: content publishes anchors; the
//     stack turns them, plus the two frame edges, into [SnapGuide] values
//     whenever bounds or anchors change.
//
//   - [OverscrollModel]: the rubber band applied while a drag pulls the
//     content past its edges.
//
//   - [MotionPlanner]: turns a [ScrollRequest] into a clamped destination and
//     a duration, choosing the nearest guide within tolerance.
//
//   - [GestureReactor]: the drag state machine. Drags move the content live;
//     on release the predicted fling is planned as a settle.
//
// # Basic Usage
//
//	scheduler := animation.NewScheduler(nil)
//	stack := scroll.NewStack("feed", config.Default(), scheduler)
//	stack.AddListener(func() { render(stack.Offset()) })
//
//	stack.Anchors().Register(scroll.AnchorDescriptor{
//		StackID:    "feed",
//		SourceRect: geometry.RectFromLTWH(0, 600, 320, 200),
//		Configurations: []scroll.AnchorConfiguration{{
//			ID:   "section.2",
//			Axes: geometry.AxisY,
//		}},
//	})
//	stack.Layout(bounds)
//
//	stack.HandleGesture(scroll.GestureEvent{Phase: scroll.PhaseChanged, Translation: geometry.Offset{Y: -120}})
//	stack.HandleGesture(scroll.GestureEvent{Phase: scroll.PhaseEnded, Translation: geometry.Offset{Y: -140}, PredictedEndTranslation: geometry.Offset{Y: -520}})
//
//	// once per frame
//	scheduler.Step()
//
// Positions are content translations: scrolling toward the end of the content
// makes them negative, and the rest position range is [-(content-container), 0].
package scroll
