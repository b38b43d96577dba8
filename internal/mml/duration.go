package mml

// DurationMS converts a tempo and note-length denominator to integer
// milliseconds. A quarter note is one beat; length 1 is a whole note (four
// beats), length 8 half a beat. The multiply happens before the divide so
// tempos that do not divide 60000 evenly lose as little precision as
// possible. A non-positive length is invalid scanner output and falls back
// to defaultLength. Callers guarantee tempoBPM > 0 via Config.Validate.
func DurationMS(tempoBPM, length, defaultLength int) int {
	if length <= 0 {
		length = defaultLength
	}
	quarter := 60000 / tempoBPM
	return (4 * quarter) / length
}
