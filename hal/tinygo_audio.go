//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetTop(top uint32)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// pwmBeeper drives a piezo buzzer from a PWM pin. A tone is the PWM carrier
// itself: the period tracks the requested frequency and the duty cycle scales
// with volume (50% at full volume).
type pwmBeeper struct {
	pin machine.Pin
	pwm pwmDevice
}

func newPWMBeeper(pin machine.Pin) Speaker {
	return &pwmBeeper{pin: pin, pwm: pwmForPin(pin)}
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

func (b *pwmBeeper) Beep(hz float32, dur time.Duration, vol uint8) error {
	if b == nil || b.pwm == nil {
		return ErrNotImplemented
	}
	if hz <= 0 || dur <= 0 {
		return nil
	}

	if err := b.pwm.Configure(machine.PWMConfig{Period: uint64(float64(1e9) / float64(hz))}); err != nil {
		return err
	}
	ch, err := b.pwm.Channel(b.pin)
	if err != nil {
		return err
	}

	top := b.pwm.Top()
	duty := uint32(uint64(top) * uint64(vol) / 510)
	b.pwm.Set(ch, duty)
	b.pwm.Enable(true)
	time.Sleep(dur)
	b.pwm.Enable(false)
	return nil
}
