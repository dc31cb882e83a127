package vtest

import (
	"testing"

	"github.com/vango-dev/vquery/pkg/query"
	"github.com/vango-dev/vquery/pkg/simulate"
)

// Simulator dispatches events to a handle and fails the test on error.
type Simulator struct {
	t   testing.TB
	h   *query.Handle
	sim *simulate.Simulator
}

// Simulate returns a Simulator for h.
func Simulate(t testing.TB, h *query.Handle) *Simulator {
	return &Simulator{t: t, h: h, sim: h.Simulate()}
}

func (s *Simulator) check(name string, e *simulate.Event, err error) *simulate.Event {
	s.t.Helper()
	if err != nil {
		s.t.Fatalf("%s on %s: %v", name, s.h.Path(), err)
	}
	return e
}

// KeyDown fires onkeydown.
func (s *Simulator) KeyDown(keyCode int, target any) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.KeyDown(keyCode, target)
	return s.check("KeyDown", e, err)
}

// KeyUp fires onkeyup.
func (s *Simulator) KeyUp(keyCode int, target any) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.KeyUp(keyCode, target)
	return s.check("KeyUp", e, err)
}

// MouseDown fires onmousedown.
func (s *Simulator) MouseDown(target any, opts ...simulate.MouseOption) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.MouseDown(target, opts...)
	return s.check("MouseDown", e, err)
}

// MouseUp fires onmouseup.
func (s *Simulator) MouseUp(target any, opts ...simulate.MouseOption) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.MouseUp(target, opts...)
	return s.check("MouseUp", e, err)
}

// Click fires onclick.
func (s *Simulator) Click(target any, opts ...simulate.MouseOption) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.Click(target, opts...)
	return s.check("Click", e, err)
}

// Input fires oninput.
func (s *Simulator) Input(target any) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.Input(target)
	return s.check("Input", e, err)
}

// Change fires onchange.
func (s *Simulator) Change(target any) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.Change(target)
	return s.check("Change", e, err)
}

// Focus fires onfocus.
func (s *Simulator) Focus(target any) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.Focus(target)
	return s.check("Focus", e, err)
}

// Blur fires onblur.
func (s *Simulator) Blur(target any) *simulate.Event {
	s.t.Helper()
	e, err := s.sim.Blur(target)
	return s.check("Blur", e, err)
}

// KeyPress emulates a keystroke changing a field from before to after.
func (s *Simulator) KeyPress(keyCode int, before, after string, target simulate.ValueTarget) []*simulate.Event {
	s.t.Helper()
	fired, err := s.sim.KeyPress(keyCode, before, after, target)
	if err != nil {
		s.t.Fatalf("KeyPress on %s: %v", s.h.Path(), err)
	}
	return fired
}
