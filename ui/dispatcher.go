// Package ui is the view/state navigation engine: the four screens, the
// transition rules between them, the redraw timer discipline, and the input
// routing to whichever screen is active.
package ui

import (
	"fmt"

	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/model"
)

// Event is a custom event on the serialized dispatch queue.
type Event uint8

const (
	// EventRedraw asks the active screen to repaint without mutating state.
	EventRedraw Event = iota
)

// redrawPeriodTicks is the counter view's repaint period in base ticks
// (200ms at the 1ms tick).
const redrawPeriodTicks = 200

// Dispatcher owns which screen is active. All of its methods must be called
// from a single goroutine; input events, timer ticks and redraws are
// serialized onto that one step loop, which is why the session state needs
// no locking.
type Dispatcher struct {
	h       hal.HAL
	d       *fbDisplay
	session *model.Session

	cur     Screen
	running bool

	menu     menuScreen
	settings settingsScreen

	timer redrawTimer
}

// NewDispatcher builds the engine with the splash screen active and paints
// the first frame.
func NewDispatcher(h hal.HAL, session *model.Session) *Dispatcher {
	d := &Dispatcher{
		h:       h,
		d:       newFBDisplay(h.Display().Framebuffer()),
		session: session,
		cur:     ScreenSplash,
		running: true,
		timer:   redrawTimer{period: redrawPeriodTicks},
	}
	d.redraw()
	return d
}

// Current returns the active screen.
func (d *Dispatcher) Current() Screen { return d.cur }

// Running reports whether the engine still wants events. It turns false when
// back-navigation from the top level requests application exit.
func (d *Dispatcher) Running() bool { return d.running }

// SwitchTo makes target the active screen. The previous screen's exit hook
// runs before the switch and the target's enter hook after it, each exactly
// once per transition.
func (d *Dispatcher) SwitchTo(target Screen) {
	d.exitHook(d.cur)
	d.cur = target
	d.enterHook(target)
	d.redraw()
}

// Only the counter view owns a timer. The empty arms keep the hook dispatch
// exhaustive: a screen without a hook is a visible no-op, not a nil callback.
func (d *Dispatcher) enterHook(s Screen) {
	switch s {
	case ScreenCounter:
		d.timer.start()
	case ScreenSplash, ScreenMenu, ScreenSettings:
	}
}

func (d *Dispatcher) exitHook(s Screen) {
	switch s {
	case ScreenCounter:
		d.timer.stop()
	case ScreenSplash, ScreenMenu, ScreenSettings:
	}
}

// DispatchKey routes one key event to the active screen and reports whether
// the screen consumed it. Unrecognized input is benign and stays unconsumed.
// Only press edges act; releases and holds are dropped here.
func (d *Dispatcher) DispatchKey(ev hal.KeyEvent) bool {
	if !d.running || !ev.Press {
		return false
	}

	if ev.Code == hal.KeyEscape {
		d.navigateBack()
		return true
	}

	before := d.cur
	var handled bool
	switch d.cur {
	case ScreenSplash:
		handled = d.splashInput(ev)
	case ScreenMenu:
		handled = d.menuInput(ev)
	case ScreenSettings:
		handled = d.settingsInput(ev)
	case ScreenCounter:
		handled = d.counterInput(ev)
	}

	switch {
	case before == ScreenCounter && d.cur == ScreenCounter:
		// The counter view repaints after every input it sees, changed or
		// not. If this dispatch already left the screen the transition has
		// drawn and the rule must not re-fire.
		d.DispatchCustom(EventRedraw)
	case handled && d.cur == before:
		d.redraw()
	}
	return handled
}

// DispatchCustom handles a custom event. A redraw request is meaningful only
// while the counter view is active; anything else is dropped without error.
func (d *Dispatcher) DispatchCustom(ev Event) {
	if !d.running {
		return
	}
	if ev == EventRedraw && d.cur == ScreenCounter {
		d.redraw()
	}
}

// TickOne advances the redraw timer by one base tick. Expiry feeds a redraw
// through the same serialized path as input, never a separate goroutine.
func (d *Dispatcher) TickOne() {
	if !d.running {
		return
	}
	if d.timer.tick() {
		d.DispatchCustom(EventRedraw)
	}
}

// navigateBack applies the active screen's "previous" target. Settings and
// counter return to the menu; the menu and the splash are top-level, so back
// there means application exit.
func (d *Dispatcher) navigateBack() {
	switch d.cur {
	case ScreenSplash, ScreenMenu:
		d.logf("exit requested from %s", d.cur)
		d.exitHook(d.cur)
		d.running = false
	case ScreenSettings:
		// Leaving without saving keeps the live edits for this session only;
		// the store still holds whatever was last saved.
		d.SwitchTo(ScreenMenu)
	case ScreenCounter:
		d.SwitchTo(ScreenMenu)
	}
}

func (d *Dispatcher) redraw() {
	switch d.cur {
	case ScreenSplash:
		d.drawSplash()
	case ScreenMenu:
		d.drawMenu()
	case ScreenSettings:
		d.drawSettings()
	case ScreenCounter:
		d.drawCounter()
	}
	if err := d.d.Display(); err != nil {
		d.logf("present failed: %v", err)
	}
}

// playFeedback beeps for an event when sound is enabled. The call blocks for
// the tone's (bounded) duration; audio is synchronous with its input event.
func (d *Dispatcher) playFeedback(s model.Sound) {
	t, ok := model.Feedback(d.session.Prefs.SoundOn, s)
	if !ok {
		return
	}
	sp := d.h.Speaker()
	if sp == nil {
		return
	}
	if err := sp.Beep(t.Hz, t.Duration, t.Volume); err != nil {
		d.logf("beep failed: %v", err)
	}
}

func (d *Dispatcher) logf(format string, args ...any) {
	if log := d.h.Logger(); log != nil {
		log.WriteLineString("lifecounter: " + fmt.Sprintf(format, args...))
	}
}
