// Package testing provides a test harness for scroll stacks.
//
// # Quick Start
//
// Create a tester, size the content, drive gestures and pump frames:
//
//	func TestSnap(t *testing.T) {
//	    tester := drifttest.NewStackTesterWithT(t, "feed", config.Default())
//	    tester.SetSizes(geometry.Size{Width: 320, Height: 2000}, geometry.Size{Width: 320, Height: 480})
//
//	    tester.Drag(geometry.Offset{Y: -300})
//	    if err := tester.PumpAndSettle(2 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if got := tester.Stack().Offset().Y; got != -300 {
//	        t.Errorf("expected -300, got %v", got)
//	    }
//	}
//
// # Gestures
//
// [GestureScript] describes a drag as its Changed translations plus the
// predicted end translation reported on release. [DragScript] and
// [FlingScript] build common scripts; [StackTester.Play] sends one.
// [StackTester.DragBy] and [StackTester.Release] drive a drag step by step.
//
// # Time
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/snapscroll/pkg/testing"
package testing
