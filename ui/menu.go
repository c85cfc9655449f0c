package ui

import (
	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/model"
)

var menuEntries = [...]string{
	"Return to life view",
	"Reset lifes",
	"Configure settings",
}

type menuScreen struct {
	sel int
}

func (d *Dispatcher) menuInput(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyUp:
		if d.menu.sel > 0 {
			d.menu.sel--
		}
		return true
	case hal.KeyDown:
		if d.menu.sel < len(menuEntries)-1 {
			d.menu.sel++
		}
		return true
	case hal.KeyEnter:
		switch d.menu.sel {
		case 0:
			d.SwitchTo(ScreenCounter)
		case 1:
			d.session.Reset()
			d.playFeedback(model.SoundReset)
			d.SwitchTo(ScreenCounter)
		case 2:
			d.SwitchTo(ScreenSettings)
		}
		return true
	}
	return false
}

func (d *Dispatcher) drawMenu() {
	disp := d.d
	w16, h16 := disp.Size()
	w := int(w16)
	h := int(h16)

	disp.clear(colorBG)
	disp.textCentered(fontTitle, w/2, h/8, "Lifecounter", colorFG)

	rowH := h / 8
	top := h / 4
	for i, label := range menuEntries {
		y := top + i*rowH
		fg := colorFG
		if i == d.menu.sel {
			_ = disp.FillRectangle(int16(w/16), int16(y), int16(w-w/8), int16(rowH), colorSelBG)
			fg = colorSelFG
		}
		disp.text(fontText, w/8, y+rowH*3/4, label, fg)
	}
}
