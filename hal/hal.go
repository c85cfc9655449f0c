package hal

import (
	"errors"
	"io"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Speaker emits a single tone.
//
// Beep blocks for the tone duration; callers keep durations short
// (hundreds of milliseconds) so the dispatch loop stays responsive.
type Speaker interface {
	Beep(hz float32, dur time.Duration, vol uint8) error
}

// Backlight controls the display backlight policy.
type Backlight interface {
	// ForceOn keeps the backlight lit regardless of the platform's idle policy.
	ForceOn()
	// ForceAuto returns backlight control to the platform.
	ForceAuto()
}

// Store is a named-blob persistence area.
//
// Create uses truncate-create-always semantics: prior content is replaced.
// Each Open/Create must be paired with a Close, including on error paths.
type Store interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform; higher-level timers count ticks.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Speaker() Speaker
	Backlight() Backlight
	Store() Store
	Time() Time
}
