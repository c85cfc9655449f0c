package ui

import (
	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/model"
	"github.com/antsy/Lifecounter/prefs"
)

const (
	settingsRowLife = iota
	settingsRowBacklight
	settingsRowSound
	settingsRowSave
	settingsRowCount
)

var settingsLabels = [...]string{
	"Starting life",
	"Backlight always on",
	"Audio feedback",
	"Save settings",
}

type settingsScreen struct {
	sel int
}

// Edits land in the live session record immediately; nothing touches the
// store until the save row is activated.
func (d *Dispatcher) settingsInput(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyUp:
		if d.settings.sel > 0 {
			d.settings.sel--
		}
		return true
	case hal.KeyDown:
		if d.settings.sel < settingsRowCount-1 {
			d.settings.sel++
		}
		return true
	case hal.KeyLeft:
		return d.settingsAdjust(-1)
	case hal.KeyRight:
		return d.settingsAdjust(+1)
	case hal.KeyEnter:
		if d.settings.sel != settingsRowSave {
			return false
		}
		d.playFeedback(model.SoundLifeChanged)
		if err := prefs.Save(d.h.Store(), d.session.Prefs); err != nil {
			// Saving is best effort; the live record stays authoritative.
			d.logf("save preferences: %v", err)
		}
		d.SwitchTo(ScreenMenu)
		return true
	}
	return false
}

func (d *Dispatcher) settingsAdjust(dir int) bool {
	p := &d.session.Prefs
	switch d.settings.sel {
	case settingsRowLife:
		if dir > 0 {
			p.DefaultLife = prefs.NextStartingLife(p.DefaultLife)
		} else {
			p.DefaultLife = prefs.PrevStartingLife(p.DefaultLife)
		}
	case settingsRowBacklight:
		p.BacklightOn = !p.BacklightOn
		d.applyBacklight()
	case settingsRowSound:
		p.SoundOn = !p.SoundOn
	case settingsRowSave:
		return false
	}
	return true
}

// applyBacklight pushes the current backlight preference to the hardware.
// Toggling takes effect immediately, before any save.
func (d *Dispatcher) applyBacklight() {
	bl := d.h.Backlight()
	if bl == nil {
		return
	}
	if d.session.Prefs.BacklightOn {
		bl.ForceOn()
	} else {
		bl.ForceAuto()
	}
}

func (d *Dispatcher) drawSettings() {
	disp := d.d
	w16, h16 := disp.Size()
	w := int(w16)
	h := int(h16)

	disp.clear(colorBG)
	disp.textCentered(fontTitle, w/2, h/8, "Settings", colorFG)

	p := d.session.Prefs
	values := [...]string{
		prefs.StartingLifeLabel(p.DefaultLife),
		onOff(p.BacklightOn),
		onOff(p.SoundOn),
		"",
	}

	rowH := h / 8
	top := h / 4
	for i, label := range settingsLabels {
		y := top + i*rowH
		fg := colorFG
		if i == d.settings.sel {
			_ = disp.FillRectangle(int16(w/16), int16(y), int16(w-w/8), int16(rowH), colorSelBG)
			fg = colorSelFG
		}
		baseline := y + rowH*3/4
		if i == settingsRowSave {
			disp.textCentered(fontText, w/2, baseline, label, fg)
			continue
		}
		disp.text(fontText, w/8, baseline, label, fg)
		v := values[i]
		if i == d.settings.sel {
			v = "< " + v + " >"
		}
		disp.text(fontText, w-w/8-textWidth(fontText, v), baseline, v, fg)
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
