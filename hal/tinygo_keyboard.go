//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

const (
	kbdAddr uint16 = 0x1F
	kbdCmd         = 0x09
)

// Scan codes from the carrier's keyboard MCU. Only the keys the counter
// uses are mapped; everything else reads as KeyUnknown upstream.
const (
	kbdCodeEsc   byte = 0xB1
	kbdCodeLeft  byte = 0xB4
	kbdCodeUp    byte = 0xB5
	kbdCodeDown  byte = 0xB6
	kbdCodeRight byte = 0xB7
)

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte

	ch chan KeyEvent
}

func newI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{kbdCmd}

	// Prefer I2C1 (carrier wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write, ch: make(chan KeyEvent, 64)}

			// Probe the device to ensure the selected I2C instance works.
			// On boot the keyboard MCU can be slow to respond, so retry briefly.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(kbdAddr, k.write[:], k.read[:]); err == nil {
					go k.pollLoop()
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

func (k *i2cKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *i2cKeyboard) pollLoop() {
	defer close(k.ch)
	for {
		ev, ok := k.readEvent()
		if ok {
			select {
			case k.ch <- ev:
			default:
			}
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(kbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return KeyEvent{}, false
	}

	eventType := k.read[0]
	key := k.read[1]

	switch eventType {
	case 0x01: // key down
		return k.translate(key, true)
	case 0x03: // key up
		return k.translate(key, false)
	default:
		// key held or unknown: ignore, the app acts on press edges only.
		return KeyEvent{}, false
	}
}

func (k *i2cKeyboard) translate(code byte, press bool) (KeyEvent, bool) {
	switch code {
	case kbdCodeUp:
		return KeyEvent{Code: KeyUp, Press: press}, true
	case kbdCodeDown:
		return KeyEvent{Code: KeyDown, Press: press}, true
	case kbdCodeLeft:
		return KeyEvent{Code: KeyLeft, Press: press}, true
	case kbdCodeRight:
		return KeyEvent{Code: KeyRight, Press: press}, true
	case kbdCodeEsc:
		return KeyEvent{Code: KeyEscape, Press: press}, true
	case '\r', '\n':
		return KeyEvent{Code: KeyEnter, Press: press}, true
	default:
		return KeyEvent{}, false
	}
}
