//go:build !tinygo && cgo

package hal

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	hostSpeakerSampleRate = 44100

	// Longest tone we will block the dispatch loop for.
	hostSpeakerMaxBeep = 500 * time.Millisecond
)

// hostSpeaker plays tones on desktop via Ebiten's audio package. The square
// wave approximates the device's PWM buzzer output.
type hostSpeaker struct {
	mu  sync.Mutex
	ctx *audio.Context
}

func newHostSpeaker() Speaker { return &hostSpeaker{} }

func (s *hostSpeaker) Beep(hz float32, dur time.Duration, vol uint8) error {
	if hz <= 0 || dur <= 0 {
		return nil
	}
	if dur > hostSpeakerMaxBeep {
		dur = hostSpeakerMaxBeep
	}

	s.mu.Lock()
	if s.ctx == nil {
		s.ctx = audio.NewContext(hostSpeakerSampleRate)
	}
	ctx := s.ctx
	s.mu.Unlock()

	p := ctx.NewPlayerFromBytes(squareWave(hz, dur, vol))
	p.Play()
	time.Sleep(dur)
	return p.Close()
}

// squareWave renders a 16-bit little-endian stereo square wave.
func squareWave(hz float32, dur time.Duration, vol uint8) []byte {
	n := int(float64(hostSpeakerSampleRate) * dur.Seconds())
	if n <= 0 {
		return nil
	}

	amp := int16(int32(vol) * 127)
	period := float64(hostSpeakerSampleRate) / float64(hz)
	if period < 2 {
		period = 2
	}
	half := period / 2

	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		s := amp
		if phase >= half {
			s = -amp
		}
		phase++
		if phase >= period {
			phase -= period
		}
		lo := byte(s)
		hi := byte(uint16(s) >> 8)
		j := i * 4
		buf[j+0] = lo
		buf[j+1] = hi
		buf[j+2] = lo
		buf[j+3] = hi
	}
	return buf
}
