package simulate

import (
	"github.com/vango-dev/vquery/internal/errors"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// Resolver returns the node events are dispatched to.
type Resolver func() (*vdom.VNode, error)

// Simulator dispatches synthetic events to a resolved node.
// The node is resolved again on every call.
type Simulator struct {
	resolve Resolver
}

// New creates a Simulator bound to resolve.
func New(resolve Resolver) *Simulator {
	return &Simulator{resolve: resolve}
}

// For creates a Simulator bound to a fixed node.
func For(node *vdom.VNode) *Simulator {
	return New(func() (*vdom.VNode, error) {
		if node == nil {
			return nil, errors.New(errors.CodeNodeNotFound).WithDetail("nil node")
		}
		return node, nil
	})
}

// KeyDown fires onkeydown with keyCode.
func (s *Simulator) KeyDown(keyCode int, target any) (*Event, error) {
	return s.dispatch(vdom.EventKeyDown, NewKeyEvent(TypeKeyDown, keyCode, defaultTarget(target)))
}

// KeyUp fires onkeyup with keyCode.
func (s *Simulator) KeyUp(keyCode int, target any) (*Event, error) {
	return s.dispatch(vdom.EventKeyUp, NewKeyEvent(TypeKeyUp, keyCode, defaultTarget(target)))
}

// MouseDown fires onmousedown.
func (s *Simulator) MouseDown(target any, opts ...MouseOption) (*Event, error) {
	return s.dispatch(vdom.EventMouseDown, NewMouseEvent(TypeMouseDown, defaultTarget(target), opts...))
}

// MouseUp fires onmouseup.
func (s *Simulator) MouseUp(target any, opts ...MouseOption) (*Event, error) {
	return s.dispatch(vdom.EventMouseUp, NewMouseEvent(TypeMouseUp, defaultTarget(target), opts...))
}

// Click fires onclick.
func (s *Simulator) Click(target any, opts ...MouseOption) (*Event, error) {
	return s.dispatch(vdom.EventClick, NewMouseEvent(TypeClick, defaultTarget(target), opts...))
}

// Input fires oninput.
func (s *Simulator) Input(target any) (*Event, error) {
	return s.dispatch(vdom.EventInput, NewEvent(TypeInput, defaultTarget(target)))
}

// Change fires onchange.
func (s *Simulator) Change(target any) (*Event, error) {
	return s.dispatch(vdom.EventChange, NewEvent(TypeChange, defaultTarget(target)))
}

// Focus fires onfocus.
func (s *Simulator) Focus(target any) (*Event, error) {
	return s.dispatch(vdom.EventFocus, NewEvent(TypeFocus, defaultTarget(target)))
}

// Blur fires onblur.
func (s *Simulator) Blur(target any) (*Event, error) {
	return s.dispatch(vdom.EventBlur, NewEvent(TypeBlur, defaultTarget(target)))
}

// KeyPress emulates a keystroke that changes a text field from before to
// after. The target's value is set to before, then keydown fires, then the
// value is set to after, then keyup and input fire. Handlers that are not
// wired are skipped. A nil target, including a nil *Field, is replaced by a
// new Field.
//
// The returned events are the ones that fired, in order.
func (s *Simulator) KeyPress(keyCode int, before, after string, target ValueTarget) ([]*Event, error) {
	node, err := s.resolve()
	if err != nil {
		return nil, err
	}
	if target == nil || isNilField(target) {
		target = &Field{}
	}

	var fired []*Event
	fire := func(key string, e *Event) {
		if h, ok := lookup(node, key); ok {
			h(e)
			fired = append(fired, e)
		}
	}

	target.SetValue(before)
	fire(vdom.EventKeyDown, NewKeyEvent(TypeKeyDown, keyCode, target))
	target.SetValue(after)
	fire(vdom.EventKeyUp, NewKeyEvent(TypeKeyUp, keyCode, target))
	fire(vdom.EventInput, NewEvent(TypeInput, target))
	return fired, nil
}

// dispatch calls the handler stored under key on the resolved node.
func (s *Simulator) dispatch(key string, e *Event) (*Event, error) {
	node, err := s.resolve()
	if err != nil {
		return nil, err
	}
	h, ok := lookup(node, key)
	if !ok {
		return nil, errors.New(errors.CodeMissingHandler).WithDetailf("%s on %s", key, node)
	}
	h(e)
	return e, nil
}

func lookup(node *vdom.VNode, key string) (HandlerFunc, bool) {
	if node == nil {
		return nil, false
	}
	v, ok := node.Properties.Get(key)
	if !ok {
		return nil, false
	}
	return wrapHandler(v)
}

func defaultTarget(target any) any {
	if target == nil || isNilField(target) {
		return &Field{}
	}
	return target
}

func isNilField(target any) bool {
	f, ok := target.(*Field)
	return ok && f == nil
}
