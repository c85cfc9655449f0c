package ui

import (
	"strconv"

	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/model"
)

func (d *Dispatcher) counterInput(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyUp:
		d.session.Increment()
		d.playFeedback(model.SoundLifeChanged)
		return true
	case hal.KeyDown:
		d.session.Decrement()
		d.playFeedback(model.SoundLifeChanged)
		return true
	case hal.KeyLeft, hal.KeyRight:
		d.session.TogglePlayer()
		d.playFeedback(model.SoundPlayerChanged)
		return true
	case hal.KeyEnter:
		d.SwitchTo(ScreenMenu)
		return true
	}
	return false
}

func (d *Dispatcher) drawCounter() {
	disp := d.d
	w16, h16 := disp.Size()
	w := int(w16)
	h := int(h16)

	disp.clear(colorBG)

	panelW := w / 2
	d.drawCounterPanel(0, 0, panelW, h, d.session.Life1, d.session.Selected == model.PlayerOne)
	d.drawCounterPanel(panelW, 0, w-panelW, h, d.session.Life2, d.session.Selected == model.PlayerTwo)
}

// drawCounterPanel paints one player's half: the outer frame, the big life
// numeral, and the selection cues (inner frame plus up/down markers) when
// this player takes the input.
func (d *Dispatcher) drawCounterPanel(x, y, w, h, life int, selected bool) {
	disp := d.d
	radius := w / 16
	inset := w / 16
	cx := x + w/2

	disp.frameRect(x, y, w, h, radius, colorDim)
	if selected {
		disp.frameRect(x+inset, y+inset, w-2*inset, h-2*inset, radius, colorFG)
		tw := w / 8
		th := tw * 3 / 4
		disp.triangleUp(cx, y+h/4-th, tw, th, colorMark)
		disp.triangleDown(cx, y+h*3/4, tw, th, colorMark)
	}
	disp.textCentered(fontNumeral, cx, y+h/2+h/20, strconv.Itoa(life), colorFG)
}
