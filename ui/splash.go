package ui

import (
	"tinygo.org/x/tinyfont/freesans"

	"github.com/antsy/Lifecounter/hal"
)

var fontSplash = &freesans.Bold18pt7b

// Only OK advances past the splash; everything else stays unconsumed.
func (d *Dispatcher) splashInput(ev hal.KeyEvent) bool {
	if ev.Code == hal.KeyEnter {
		d.SwitchTo(ScreenCounter)
		return true
	}
	return false
}

func (d *Dispatcher) drawSplash() {
	disp := d.d
	w16, h16 := disp.Size()
	w := int(w16)
	h := int(h16)

	disp.clear(colorBG)
	disp.frameRect(w/16, h/16, w-w/8, h-h/8, w/32, colorDim)

	tw := w / 10
	th := tw * 3 / 4
	disp.triangleUp(w/2, h/4-th, tw, th, colorMark)
	disp.triangleDown(w/2, h*11/16, tw, th, colorMark)

	disp.textCentered(fontSplash, w/2, h*7/16, "Lifecounter", colorFG)
	disp.textCentered(fontText, w/2, h*9/16, "Press OK to start", colorDim)
}
