package mml

import "fmt"

// Kind classifies a scanned token.
type Kind int

const (
	KindNote Kind = iota + 1
	KindRest
)

// Token is one parsed unit of the score. Tokens are produced and consumed
// one at a time and never collected.
type Token struct {
	Kind       Kind
	Letter     byte // 'A'..'G'; unset for rests
	Accidental int  // -1 flat, 0 natural, +1 sharp
	Length     int  // note-length denominator; 0 means "use Config.DefaultLength"
}

// Config is the playback configuration. It is immutable for the duration of
// one play invocation. Octave is fixed for the entire piece: the grammar has
// no octave-change token.
type Config struct {
	TempoBPM      int // beats per minute, quarter note = 1 beat
	DefaultLength int // denominator used when a token omits its length
	Octave        int // 1..8
}

func DefaultConfig() Config {
	return Config{TempoBPM: 120, DefaultLength: 4, Octave: 4}
}

// Validate rejects configurations that would break the duration arithmetic.
// A non-positive tempo would divide by zero, so it is caught here, before
// any token is processed.
func (c Config) Validate() error {
	if c.TempoBPM <= 0 {
		return fmt.Errorf("tempo must be positive, got %d", c.TempoBPM)
	}
	if c.DefaultLength <= 0 {
		return fmt.Errorf("default length must be positive, got %d", c.DefaultLength)
	}
	return nil
}

// ClampOctave confines a starting octave to the playable range.
func ClampOctave(octave int) int {
	if octave < 1 {
		return 1
	}
	if octave > 8 {
		return 8
	}
	return octave
}
