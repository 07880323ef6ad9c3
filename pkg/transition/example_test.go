package transition_test

import (
	"fmt"
	"time"

	"github.com/go-drift/transition/pkg/animation"
	"github.com/go-drift/transition/pkg/transition"
)

// This example shows a controller toggled between shown and hidden. A zero
// duration settles each transition inside Update.
func ExampleController() {
	c, err := transition.NewController(transition.Props{
		Animation: "fade",
		OnShow:    func(r transition.Record) { fmt.Println("shown:", r.Status) },
		OnHide:    func(r transition.Record) { fmt.Println("hidden:", r.Status) },
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()

	c.SetInto(true)
	c.Update()
	c.SetInto(false)
	c.Update()
	// Output:
	// shown: entered
	// hidden: exited
}

// This example shows the class names and style produced while entering.
func ExampleController_Render() {
	c, _ := transition.NewController(transition.Props{
		Animation: "scale",
		Duration:  500 * time.Millisecond,
		Element:   transition.Element{ClassName: "ui image"},
	})
	defer c.Dispose()

	c.SetInto(true)
	c.Update()
	r := c.Render()
	fmt.Println(r.ClassName)
	fmt.Println(r.Style[transition.StyleAnimationDuration])
	// Output:
	// ui image scale animating in
	// 500ms
}

// This example shows a group dropping a child once its exit completes.
// The immediate scheduler completes every animation inside Update.
func ExampleGroup() {
	g, _ := transition.NewGroup(transition.GroupConfig{
		Animation: "fade",
		Duration:  300 * time.Millisecond,
		Children:  []transition.Child{{Key: "a"}, {Key: "b"}, {Key: "c"}},
		OnRemoved: func(key string) { fmt.Println("removed", key) },
	}, transition.WithScheduler(animation.ImmediateScheduler{}))
	defer g.Dispose()

	_ = g.Update([]transition.Child{{Key: "a"}, {Key: "c"}})
	fmt.Println(g.Keys())
	// Output:
	// removed b
	// [a c]
}
