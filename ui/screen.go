package ui

// Screen identifies one full-display UI mode. Exactly one is active at a time.
type Screen uint8

const (
	// ScreenSplash is the mandatory entry screen.
	ScreenSplash Screen = iota
	// ScreenMenu is the top-level menu; back from here exits the app.
	ScreenMenu
	// ScreenSettings edits the live preferences and saves them on request.
	ScreenSettings
	// ScreenCounter is the main life counter view.
	ScreenCounter
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenMenu:
		return "menu"
	case ScreenSettings:
		return "settings"
	case ScreenCounter:
		return "counter"
	default:
		return "?"
	}
}
