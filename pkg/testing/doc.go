// Package testing provides deterministic helpers for testing transitions.
//
// # Quick Start
//
// Install a harness, build a controller, then advance time:
//
//	func TestFadeIn(t *testing.T) {
//	    h := transitiontest.NewHarness(t)
//	    rec := transitiontest.NewRecorder()
//
//	    c, _ := transition.NewController(rec.Wire(transition.Props{
//	        Animation: "fade",
//	        Duration:  300 * time.Millisecond,
//	    }))
//	    c.SetInto(true)
//	    c.Update()
//
//	    h.Advance(300 * time.Millisecond)
//	    if rec.Count(transitiontest.OnShow) != 1 {
//	        t.Error("expected one onShow")
//	    }
//	}
//
// Advance moves the fake clock and steps every active ticker once, which is
// what a real frame loop does each frame. Use Frames to step in smaller
// increments.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import transitiontest "github.com/go-drift/transition/pkg/testing"
package testing
