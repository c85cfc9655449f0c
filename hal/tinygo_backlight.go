//go:build tinygo && baremetal

package hal

import "machine"

// pinBacklight gates the LCD backlight rail. This board has no idle dimmer,
// so "auto" also leaves the panel lit; the distinction matters only on
// platforms with an idle policy.
type pinBacklight struct {
	pin machine.Pin
}

func newPinBacklight(pin machine.Pin) *pinBacklight {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.High()
	return &pinBacklight{pin: pin}
}

func (b *pinBacklight) ForceOn()   { b.pin.High() }
func (b *pinBacklight) ForceAuto() { b.pin.High() }
