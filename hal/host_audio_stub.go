//go:build !tinygo && !cgo

package hal

import "time"

// hostSpeaker is a stub when CGO/window backends are unavailable.
type hostSpeakerStub struct{}

func newHostSpeaker() Speaker { return hostSpeakerStub{} }

func (hostSpeakerStub) Beep(hz float32, dur time.Duration, vol uint8) error {
	_ = hz
	_ = dur
	_ = vol
	return nil
}
