// Package tone turns resolved pitch indices into sound: a square-wave
// beeper on the shared audio context for live playback, and a MIDI sink for
// driving an external synth.
package tone

import (
	"math"

	"mmlchime/internal/mml"
)

// Frequency returns the equal-tempered frequency in Hz for a pitch index.
// Index 0 is A1 at 55 Hz. mml.Rest (and anything else outside the table)
// maps to 0, meaning silence.
func Frequency(p mml.Pitch) float64 {
	if p < mml.MinPitch || p > mml.MaxPitch {
		return 0
	}
	return 55 * math.Pow(2, float64(p)/12)
}
