//go:build !tinygo

// mkcfg stages or inspects the lifecounter preferences blob in the host
// data area without driving the UI. It writes the same three-line format
// the app reads at boot.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/antsy/Lifecounter/hal"
	"github.com/antsy/Lifecounter/prefs"
)

func main() {
	var (
		life      = flag.Int("life", 20, "Starting life total.")
		backlight = flag.Bool("backlight", false, "Keep the backlight always on.")
		sound     = flag.Bool("sound", false, "Audio feedback on key presses.")
		show      = flag.Bool("show", false, "Print the stored preferences and exit.")
	)
	flag.Parse()

	store := hal.New().Store()

	if *show {
		rec := prefs.Load(store, nil)
		fmt.Printf("starting life: %d (%s)\n", rec.DefaultLife, prefs.StartingLifeLabel(rec.DefaultLife))
		fmt.Printf("backlight:     %s\n", onOff(rec.BacklightOn))
		fmt.Printf("sound:         %s\n", onOff(rec.SoundOn))
		return
	}

	if prefs.StartingLives[prefs.StartingLifeIndex(*life)] != *life {
		fmt.Fprintf(os.Stderr, "warning: %d is not a selectable starting life; the settings screen will snap to %s\n",
			*life, prefs.StartingLifeLabel(*life))
	}

	rec := prefs.Record{DefaultLife: *life, BacklightOn: *backlight, SoundOn: *sound}
	if err := prefs.Save(store, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
