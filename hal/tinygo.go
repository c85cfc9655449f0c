//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger    *uartLogger
	fb        Framebuffer
	kbd       Keyboard
	t         *tinyGoTime
	store     Store
	speaker   Speaker
	backlight Backlight
}

// New returns the HAL for the PicoCalc-style carrier (RP2040/RP2350).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var fb Framebuffer
	if lcd, err := newLCDFramebuffer(); err == nil {
		fb = lcd
	} else {
		logger.WriteLineString("hal: lcd init failed, using stub framebuffer")
		fb = newStubFramebuffer()
	}

	var kbd Keyboard
	if kb, err := newI2CKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: keyboard init failed")
		kbd = &stubKeyboard{}
	}

	return &tinyGoHAL{
		logger:    logger,
		fb:        fb,
		kbd:       kbd,
		t:         newTinyGoTime(),
		store:     newFlashStore(logger),
		speaker:   newPWMBeeper(machine.GP2),
		backlight: newPinBacklight(machine.GP16),
	}
}

func (h *tinyGoHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHAL) Display() Display     { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input         { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Speaker() Speaker     { return h.speaker }
func (h *tinyGoHAL) Backlight() Backlight { return h.backlight }
func (h *tinyGoHAL) Store() Store         { return h.store }
func (h *tinyGoHAL) Time() Time           { return h.t }
