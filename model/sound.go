package model

import "time"

// Sound names an audio feedback event.
type Sound uint8

const (
	SoundReset Sound = iota
	SoundLifeChanged
	SoundPlayerChanged
)

// Tone describes one beep for the speaker.
type Tone struct {
	Hz       float32
	Duration time.Duration
	Volume   uint8
}

const feedbackVolume = 204 // ~80% of full scale

// Feedback maps a sound event to its tone. It is pure: the caller passes
// the session's sound flag and plays the tone only when ok is true.
func Feedback(soundOn bool, s Sound) (t Tone, ok bool) {
	if !soundOn {
		return Tone{}, false
	}
	switch s {
	case SoundReset:
		return Tone{Hz: 320, Duration: 400 * time.Millisecond, Volume: feedbackVolume}, true
	case SoundLifeChanged:
		return Tone{Hz: 440, Duration: 100 * time.Millisecond, Volume: feedbackVolume}, true
	case SoundPlayerChanged:
		return Tone{Hz: 580, Duration: 100 * time.Millisecond, Volume: feedbackVolume}, true
	default:
		return Tone{}, false
	}
}
