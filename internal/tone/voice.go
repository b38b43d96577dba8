package tone

import (
	"math"
	"sync/atomic"

	"mmlchime/internal/mml"
)

const voiceGain = 0.25

// Voice is a single square-wave oscillator shared by the live beeper and
// the offline renderer. SetPitch may be called from another goroutine while
// Render runs on the audio thread.
type Voice struct {
	sampleRate float64
	freqBits   atomic.Uint64 // float64 bits; 0 = silent
	phase      float64
}

func NewVoice(sampleRate int) *Voice {
	return &Voice{sampleRate: float64(sampleRate)}
}

// SetPitch retunes the oscillator. mml.Rest silences it.
func (v *Voice) SetPitch(p mml.Pitch) {
	v.freqBits.Store(math.Float64bits(Frequency(p)))
}

// Silence gates the oscillator off.
func (v *Voice) Silence() {
	v.freqBits.Store(0)
}

// Render fills dst with mono samples. The frequency is sampled once per
// buffer; retunes land on the next buffer boundary.
func (v *Voice) Render(dst []float32) {
	freq := math.Float64frombits(v.freqBits.Load())
	if freq <= 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	step := freq / v.sampleRate
	for i := range dst {
		if v.phase < 0.5 {
			dst[i] = voiceGain
		} else {
			dst[i] = -voiceGain
		}
		v.phase += step
		if v.phase >= 1 {
			v.phase -= 1
		}
	}
}
