// Package app wires a platform HAL to the lifecounter engine: it loads the
// preferences, builds the session, and pumps keyboard events and timer ticks
// through the dispatcher one at a time on the runner's goroutine.
package app

import (
	"errors"

	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/model"
	"github.com/antsy/Lifecounter/prefs"
	"github.com/antsy/Lifecounter/ui"
)

// ErrExit reports a user-requested shutdown: back pressed on a top-level
// screen. Runners treat it as a clean stop, not a failure.
var ErrExit = errors.New("lifecounter: exit requested")

type system struct {
	h    hal.HAL
	disp *ui.Dispatcher

	kbd   <-chan hal.KeyEvent
	ticks <-chan uint64
	last  uint64

	done bool
}

// New builds the app and returns the step function the platform runner calls
// once per frame. Each step drains pending input and elapsed ticks in arrival
// order; all engine work happens inside that call.
func New(h hal.HAL) func() error {
	s := newSystem(h)
	return s.step
}

// Run drives the loop directly and never returns. Platforms without a frame
// callback (the bare-metal build) block here.
func Run(h hal.HAL) {
	s := newSystem(h)
	for s.disp.Running() {
		select {
		case ev := <-s.kbd:
			s.disp.DispatchKey(ev)
		case seq := <-s.ticks:
			s.advanceTo(seq)
		}
	}
	s.teardown()
	select {}
}

func newSystem(h hal.HAL) *system {
	rec := prefs.Load(h.Store(), h.Logger())
	session := model.NewSession(rec)

	// The stored backlight policy applies from the first frame.
	if bl := h.Backlight(); bl != nil {
		if rec.BacklightOn {
			bl.ForceOn()
		} else {
			bl.ForceAuto()
		}
	}

	s := &system{
		h:    h,
		disp: ui.NewDispatcher(h, session),
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.kbd = kbd.Events()
		}
	}
	if t := h.Time(); t != nil {
		s.ticks = t.Ticks()
	}
	return s
}

func (s *system) step() error {
	if s.done {
		return ErrExit
	}
	s.drainKeys()
	s.drainTicks()
	if !s.disp.Running() {
		s.teardown()
		return ErrExit
	}
	return nil
}

func (s *system) drainKeys() {
	for {
		select {
		case ev, ok := <-s.kbd:
			if !ok {
				s.kbd = nil
				return
			}
			s.disp.DispatchKey(ev)
			if !s.disp.Running() {
				return
			}
		default:
			return
		}
	}
}

func (s *system) drainTicks() {
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return
			}
			s.advanceTo(seq)
		default:
			return
		}
	}
}

// advanceTo feeds the engine one TickOne per elapsed base tick. Sequence
// numbers may jump when the producer dropped ticks under backpressure; a
// stall longer than a second collapses to a second of timer work.
func (s *system) advanceTo(seq uint64) {
	n := seq - s.last
	s.last = seq
	if n > 1000 {
		n = 1000
	}
	for i := uint64(0); i < n; i++ {
		s.disp.TickOne()
	}
}

func (s *system) teardown() {
	if s.done {
		return
	}
	s.done = true
	if bl := s.h.Backlight(); bl != nil {
		bl.ForceAuto()
	}
	if l := s.h.Logger(); l != nil {
		l.WriteLineString("lifecounter: shutting down")
	}
}
