//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger    *hostLogger
	fb        *hostFramebuffer
	kbd       *hostKeyboard
	t         *hostTime
	store     *hostStore
	speaker   Speaker
	backlight *hostBacklight
}

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger:    logger,
		fb:        newHostFramebuffer(320, 320),
		kbd:       newHostKeyboard(),
		t:         newHostTime(),
		store:     newHostStore(logger),
		speaker:   newHostSpeaker(),
		backlight: &hostBacklight{logger: logger},
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Speaker() Speaker     { return h.speaker }
func (h *hostHAL) Backlight() Backlight { return h.backlight }
func (h *hostHAL) Store() Store         { return h.store }
func (h *hostHAL) Time() Time           { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostBacklight has no real hardware behind it; it remembers the requested
// policy and logs the directive so simulator runs show the side effect.
type hostBacklight struct {
	mu     sync.Mutex
	forced bool
	logger *hostLogger
}

func (b *hostBacklight) ForceOn() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forced = true
	b.logger.WriteLineString("backlight: force on")
}

func (b *hostBacklight) ForceAuto() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forced = false
	b.logger.WriteLineString("backlight: auto")
}
