// Package simulate synthesizes interaction events and dispatches them to the
// handlers attached to a virtual node.
//
// There is no input device, no bubbling and no capturing: a Simulator looks
// up the handler property on the node it resolves (for example "onkeydown")
// and calls it directly with a minimal Event. The event is returned so tests
// can check whether the handler called PreventDefault or StopPropagation.
//
//	sim := simulate.For(input)
//	e, err := sim.KeyDown(13, nil)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if !e.DefaultPrevented() {
//	    t.Error("enter should be handled")
//	}
//
// Single-action methods report a MissingHandler error when the node has no
// callable handler for the event. KeyPress is the exception: it models one
// keystroke on a text field and skips whichever of keydown, keyup and input
// are not wired.
package simulate
