package mml

// Pitch indexes the fixed 87-entry tone frequency table, with A1 at index 0.
// Rest is the silent entry one past the playable range.
type Pitch int

const (
	MinPitch Pitch = 0
	MaxPitch Pitch = 86
	Rest     Pitch = 87
)

var semitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Resolve maps a note letter, accidental and octave to a pitch index. An
// accidental that pushes the semitone out of [0,11] borrows from the octave
// below or carries into the octave above, with the octave held inside [1,8].
// The final index is clamped to the table bounds, never rejected.
func Resolve(letter byte, accidental, octave int) Pitch {
	base, ok := semitones[upper(letter)]
	if !ok {
		return Rest
	}
	semitone := base + accidental
	if semitone < 0 {
		semitone += 12
		if octave > 1 {
			octave--
		}
	}
	if semitone >= 12 {
		semitone -= 12
		if octave < 8 {
			octave++
		}
	}
	idx := octave*12 + semitone - 21 // centers the table on A1 = 0
	if idx < int(MinPitch) {
		idx = int(MinPitch)
	}
	if idx > int(MaxPitch) {
		idx = int(MaxPitch)
	}
	return Pitch(idx)
}
