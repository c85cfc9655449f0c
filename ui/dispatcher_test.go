package ui

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/model"
	"github.com/antsy/Lifecounter/prefs"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFB() *fakeFB {
	const w, h = 320, 320
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}
func (f *fakeFB) Present() error          { f.presents++; return nil }

type fakeDisplay struct{ fb *fakeFB }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct{}

func (fakeInput) Keyboard() hal.Keyboard { return nil }

type beep struct {
	hz  float32
	dur time.Duration
	vol uint8
}

type fakeSpeaker struct{ beeps []beep }

func (s *fakeSpeaker) Beep(hz float32, dur time.Duration, vol uint8) error {
	s.beeps = append(s.beeps, beep{hz, dur, vol})
	return nil
}

type fakeBacklight struct {
	forcedOn bool
	calls    int
}

func (b *fakeBacklight) ForceOn()   { b.forcedOn = true; b.calls++ }
func (b *fakeBacklight) ForceAuto() { b.forcedOn = false; b.calls++ }

type fakeStore struct{ blobs map[string][]byte }

func newFakeStore() *fakeStore { return &fakeStore{blobs: map[string][]byte{}} }

func (s *fakeStore) Open(name string) (io.ReadCloser, error) {
	b, ok := s.blobs[name]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *fakeStore) Create(name string) (io.WriteCloser, error) {
	return &fakeWriter{s: s, name: name}, nil
}

type fakeWriter struct {
	s    *fakeStore
	name string
	buf  bytes.Buffer
}

func (w *fakeWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *fakeWriter) Close() error {
	w.s.blobs[w.name] = append([]byte(nil), w.buf.Bytes()...)
	return nil
}

type fakeTime struct{}

func (fakeTime) Ticks() <-chan uint64 { return nil }

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	fb        *fakeFB
	speaker   *fakeSpeaker
	backlight *fakeBacklight
	store     *fakeStore
	log       *fakeLogger
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:        newFakeFB(),
		speaker:   &fakeSpeaker{},
		backlight: &fakeBacklight{},
		store:     newFakeStore(),
		log:       &fakeLogger{},
	}
}

func (h *fakeHAL) Logger() hal.Logger       { return h.log }
func (h *fakeHAL) Display() hal.Display     { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Input() hal.Input         { return fakeInput{} }
func (h *fakeHAL) Speaker() hal.Speaker     { return h.speaker }
func (h *fakeHAL) Backlight() hal.Backlight { return h.backlight }
func (h *fakeHAL) Store() hal.Store         { return h.store }
func (h *fakeHAL) Time() hal.Time           { return fakeTime{} }

func newTestDispatcher(rec prefs.Record) (*Dispatcher, *model.Session, *fakeHAL) {
	h := newFakeHAL()
	session := model.NewSession(rec)
	return NewDispatcher(h, session), session, h
}

func press(code hal.KeyCode) hal.KeyEvent {
	return hal.KeyEvent{Code: code, Press: true}
}

func TestStartsOnSplash(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())

	if d.Current() != ScreenSplash {
		t.Fatalf("Current() = %v, want splash", d.Current())
	}
	if !d.Running() {
		t.Fatalf("Running() = false at startup")
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d at startup, want 1 first frame", h.fb.presents)
	}
}

func TestSplashEnterOpensCounter(t *testing.T) {
	d, _, _ := newTestDispatcher(prefs.Default())

	if !d.DispatchKey(press(hal.KeyEnter)) {
		t.Fatalf("enter on splash not handled")
	}
	if d.Current() != ScreenCounter {
		t.Fatalf("Current() = %v after enter, want counter", d.Current())
	}
}

func TestSplashIgnoresDirections(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())
	before := h.fb.presents

	for _, c := range []hal.KeyCode{hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight} {
		if d.DispatchKey(press(c)) {
			t.Fatalf("splash consumed %v", c)
		}
	}
	if d.Current() != ScreenSplash {
		t.Fatalf("Current() = %v, want splash", d.Current())
	}
	if h.fb.presents != before {
		t.Fatalf("presents moved %d -> %d on ignored input", before, h.fb.presents)
	}
}

func TestReleaseEventsIgnored(t *testing.T) {
	d, _, _ := newTestDispatcher(prefs.Default())

	if d.DispatchKey(hal.KeyEvent{Code: hal.KeyEnter, Press: false}) {
		t.Fatalf("release event was consumed")
	}
	if d.Current() != ScreenSplash {
		t.Fatalf("release event caused a transition to %v", d.Current())
	}
}

func TestBackTargets(t *testing.T) {
	// Splash is top level: back exits.
	d, _, _ := newTestDispatcher(prefs.Default())
	d.DispatchKey(press(hal.KeyEscape))
	if d.Running() {
		t.Fatalf("Running() = true after back on splash, want exit")
	}

	// Counter goes back to the menu, settings too, and back on the menu exits.
	d, _, _ = newTestDispatcher(prefs.Default())
	d.DispatchKey(press(hal.KeyEnter))
	d.DispatchKey(press(hal.KeyEscape))
	if d.Current() != ScreenMenu {
		t.Fatalf("Current() = %v after back on counter, want menu", d.Current())
	}

	d.DispatchKey(press(hal.KeyDown))
	d.DispatchKey(press(hal.KeyDown))
	d.DispatchKey(press(hal.KeyEnter))
	if d.Current() != ScreenSettings {
		t.Fatalf("Current() = %v, want settings", d.Current())
	}
	d.DispatchKey(press(hal.KeyEscape))
	if d.Current() != ScreenMenu {
		t.Fatalf("Current() = %v after back on settings, want menu", d.Current())
	}

	d.DispatchKey(press(hal.KeyEscape))
	if d.Running() {
		t.Fatalf("Running() = true after back on menu, want exit")
	}
}

func TestRedrawTimerScopedToCounter(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())

	before := h.fb.presents
	for i := 0; i < 2*redrawPeriodTicks; i++ {
		d.TickOne()
	}
	if h.fb.presents != before {
		t.Fatalf("splash repainted on ticks: presents %d -> %d", before, h.fb.presents)
	}

	d.DispatchKey(press(hal.KeyEnter))
	before = h.fb.presents
	for i := 0; i < redrawPeriodTicks-1; i++ {
		d.TickOne()
	}
	if h.fb.presents != before {
		t.Fatalf("counter repainted before the period elapsed")
	}
	d.TickOne()
	if h.fb.presents != before+1 {
		t.Fatalf("counter presents = %d after full period, want %d", h.fb.presents, before+1)
	}

	// Leaving the counter stops the timer; ticks go quiet again.
	d.DispatchKey(press(hal.KeyEnter))
	if d.Current() != ScreenMenu {
		t.Fatalf("Current() = %v, want menu", d.Current())
	}
	before = h.fb.presents
	for i := 0; i < 2*redrawPeriodTicks; i++ {
		d.TickOne()
	}
	if h.fb.presents != before {
		t.Fatalf("menu repainted on ticks: presents %d -> %d", before, h.fb.presents)
	}
}

func TestCounterInput(t *testing.T) {
	rec := prefs.Default()
	rec.SoundOn = true
	d, session, h := newTestDispatcher(rec)
	d.DispatchKey(press(hal.KeyEnter))

	d.DispatchKey(press(hal.KeyUp))
	if session.Life1 != 21 {
		t.Fatalf("Life1 = %d after up, want 21", session.Life1)
	}
	d.DispatchKey(press(hal.KeyRight))
	if session.Selected != model.PlayerTwo {
		t.Fatalf("Selected = %v after right, want PlayerTwo", session.Selected)
	}
	d.DispatchKey(press(hal.KeyDown))
	if session.Life2 != 19 {
		t.Fatalf("Life2 = %d after down, want 19", session.Life2)
	}
	d.DispatchKey(press(hal.KeyLeft))
	if session.Selected != model.PlayerOne {
		t.Fatalf("Selected = %v after left, want PlayerOne", session.Selected)
	}

	want := []float32{440, 580, 440, 580}
	if len(h.speaker.beeps) != len(want) {
		t.Fatalf("beeps = %d, want %d", len(h.speaker.beeps), len(want))
	}
	for i, hz := range want {
		if h.speaker.beeps[i].hz != hz {
			t.Fatalf("beep %d = %v Hz, want %v Hz", i, h.speaker.beeps[i].hz, hz)
		}
	}
}

func TestCounterSilentWhenSoundOff(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())
	d.DispatchKey(press(hal.KeyEnter))
	d.DispatchKey(press(hal.KeyUp))
	d.DispatchKey(press(hal.KeyRight))

	if len(h.speaker.beeps) != 0 {
		t.Fatalf("beeps = %d with sound off, want 0", len(h.speaker.beeps))
	}
}

func TestCounterRepaintsOnEveryInput(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())
	d.DispatchKey(press(hal.KeyEnter))

	before := h.fb.presents
	d.DispatchKey(press(hal.KeyUp))
	if h.fb.presents != before+1 {
		t.Fatalf("presents = %d after up, want %d", h.fb.presents, before+1)
	}

	// Even input the counter does not act on repaints it.
	before = h.fb.presents
	d.DispatchKey(press(hal.KeyUnknown))
	if h.fb.presents != before+1 {
		t.Fatalf("presents = %d after unknown key, want %d", h.fb.presents, before+1)
	}

	// A transition out draws exactly once, from the switch itself.
	before = h.fb.presents
	d.DispatchKey(press(hal.KeyEnter))
	if d.Current() != ScreenMenu {
		t.Fatalf("Current() = %v, want menu", d.Current())
	}
	if h.fb.presents != before+1 {
		t.Fatalf("presents = %d after transition, want %d", h.fb.presents, before+1)
	}
}

func TestMenuResetRestoresBothCounters(t *testing.T) {
	rec := prefs.Default()
	rec.SoundOn = true
	d, session, h := newTestDispatcher(rec)

	d.DispatchKey(press(hal.KeyEnter))
	d.DispatchKey(press(hal.KeyUp))
	d.DispatchKey(press(hal.KeyUp))
	d.DispatchKey(press(hal.KeyRight))
	d.DispatchKey(press(hal.KeyDown))
	if session.Life1 != 22 || session.Life2 != 19 {
		t.Fatalf("lives = %d/%d before reset, want 22/19", session.Life1, session.Life2)
	}

	d.DispatchKey(press(hal.KeyEnter)) // to menu
	d.DispatchKey(press(hal.KeyDown))  // "Reset lifes"
	d.DispatchKey(press(hal.KeyEnter))

	if session.Life1 != 20 || session.Life2 != 20 {
		t.Fatalf("lives = %d/%d after reset, want 20/20", session.Life1, session.Life2)
	}
	if d.Current() != ScreenCounter {
		t.Fatalf("Current() = %v after reset, want counter", d.Current())
	}
	last := h.speaker.beeps[len(h.speaker.beeps)-1]
	if last.hz != 320 || last.dur != 400*time.Millisecond {
		t.Fatalf("reset beep = %v Hz for %v, want 320 Hz for 400ms", last.hz, last.dur)
	}
}

func TestMenuSelectionClamps(t *testing.T) {
	d, _, _ := newTestDispatcher(prefs.Default())
	d.DispatchKey(press(hal.KeyEnter))
	d.DispatchKey(press(hal.KeyEnter)) // menu

	d.DispatchKey(press(hal.KeyUp))
	if d.menu.sel != 0 {
		t.Fatalf("menu.sel = %d after up at top, want 0", d.menu.sel)
	}
	for i := 0; i < 5; i++ {
		d.DispatchKey(press(hal.KeyDown))
	}
	if d.menu.sel != len(menuEntries)-1 {
		t.Fatalf("menu.sel = %d after downs, want %d", d.menu.sel, len(menuEntries)-1)
	}
}

func openSettings(d *Dispatcher) {
	d.DispatchKey(press(hal.KeyEnter)) // splash -> counter
	d.DispatchKey(press(hal.KeyEnter)) // counter -> menu
	for d.menu.sel < 2 {
		d.DispatchKey(press(hal.KeyDown))
	}
	d.DispatchKey(press(hal.KeyEnter)) // menu -> settings
}

func TestSettingsEditsAreLiveButUnsaved(t *testing.T) {
	d, session, h := newTestDispatcher(prefs.Default())
	openSettings(d)

	d.DispatchKey(press(hal.KeyRight))
	if session.Prefs.DefaultLife != 40 {
		t.Fatalf("DefaultLife = %d after right, want 40", session.Prefs.DefaultLife)
	}
	if _, err := h.store.Open(prefs.FileName); err == nil {
		t.Fatalf("store has a blob before save")
	}

	// Back out without saving: the live value still drives a reset.
	d.DispatchKey(press(hal.KeyEscape))
	for d.menu.sel > 1 {
		d.DispatchKey(press(hal.KeyUp))
	}
	d.DispatchKey(press(hal.KeyEnter))
	if session.Life1 != 40 || session.Life2 != 40 {
		t.Fatalf("lives = %d/%d after reset, want 40/40", session.Life1, session.Life2)
	}
	if _, err := h.store.Open(prefs.FileName); err == nil {
		t.Fatalf("store gained a blob without save")
	}
}

func TestSettingsStartingLifeCyclesBothWays(t *testing.T) {
	d, session, _ := newTestDispatcher(prefs.Default())
	openSettings(d)

	d.DispatchKey(press(hal.KeyLeft))
	if session.Prefs.DefaultLife != 10 {
		t.Fatalf("DefaultLife = %d after left, want 10", session.Prefs.DefaultLife)
	}
	for i := 0; i < len(prefs.StartingLives); i++ {
		d.DispatchKey(press(hal.KeyRight))
	}
	if session.Prefs.DefaultLife != 10 {
		t.Fatalf("DefaultLife = %d after a full cycle, want 10", session.Prefs.DefaultLife)
	}
}

func TestSettingsBacklightTogglesImmediately(t *testing.T) {
	d, session, h := newTestDispatcher(prefs.Default())
	openSettings(d)
	d.DispatchKey(press(hal.KeyDown)) // backlight row

	d.DispatchKey(press(hal.KeyRight))
	if !session.Prefs.BacklightOn || !h.backlight.forcedOn {
		t.Fatalf("backlight pref=%v hw=%v after toggle, want both on",
			session.Prefs.BacklightOn, h.backlight.forcedOn)
	}
	d.DispatchKey(press(hal.KeyLeft))
	if session.Prefs.BacklightOn || h.backlight.forcedOn {
		t.Fatalf("backlight pref=%v hw=%v after second toggle, want both off",
			session.Prefs.BacklightOn, h.backlight.forcedOn)
	}
}

func TestSettingsSavePersistsAndReturnsToMenu(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())
	openSettings(d)

	d.DispatchKey(press(hal.KeyDown))
	d.DispatchKey(press(hal.KeyDown)) // sound row
	d.DispatchKey(press(hal.KeyRight))
	d.DispatchKey(press(hal.KeyDown)) // save row
	d.DispatchKey(press(hal.KeyEnter))

	if d.Current() != ScreenMenu {
		t.Fatalf("Current() = %v after save, want menu", d.Current())
	}
	if got := string(h.store.blobs[prefs.FileName]); got != "20\n0\n1\n" {
		t.Fatalf("stored blob = %q, want %q", got, "20\n0\n1\n")
	}
	// Sound was switched on before the save, so the save confirms audibly.
	if len(h.speaker.beeps) != 1 || h.speaker.beeps[0].hz != 440 {
		t.Fatalf("beeps = %+v, want one 440 Hz confirmation", h.speaker.beeps)
	}
}

func TestDispatchIgnoredAfterExit(t *testing.T) {
	d, _, h := newTestDispatcher(prefs.Default())
	d.DispatchKey(press(hal.KeyEscape))
	if d.Running() {
		t.Fatalf("Running() = true after exit")
	}

	before := h.fb.presents
	if d.DispatchKey(press(hal.KeyEnter)) {
		t.Fatalf("key consumed after exit")
	}
	d.TickOne()
	d.DispatchCustom(EventRedraw)
	if h.fb.presents != before {
		t.Fatalf("presents moved after exit: %d -> %d", before, h.fb.presents)
	}
}
