// Package display models the segmented note display: a short row of digit
// positions plus sharp/flat indicator pixels, with a terminal renderer for
// running outside the original hardware.
package display

import (
	"sync"

	"mmlchime/internal/sequencer"
)

// Digits is the number of character positions on the display.
const Digits = 10

// LCD is an in-memory display. It satisfies sequencer.Display and is safe
// for the usual one-writer (scheduler) one-reader (UI) split.
type LCD struct {
	mu     sync.Mutex
	digits [Digits]byte
	sharp  bool
	flat   bool
}

func NewLCD() *LCD {
	l := &LCD{}
	l.mu.Lock()
	l.blankLocked()
	l.mu.Unlock()
	return l
}

func (l *LCD) blankLocked() {
	for i := range l.digits {
		l.digits[i] = ' '
	}
}

// SetText writes s into the digit row starting at pos. Text past the last
// digit is dropped, matching the hardware's fixed width.
func (l *LCD) SetText(s string, pos int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(s); i++ {
		at := pos + i
		if at < 0 || at >= Digits {
			continue
		}
		l.digits[at] = s[i]
	}
}

func (l *LCD) SetIndicator(ind sequencer.Indicator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch ind {
	case sequencer.IndicatorSharp:
		l.sharp = true
	case sequencer.IndicatorFlat:
		l.flat = true
	}
}

func (l *LCD) ClearIndicator(ind sequencer.Indicator) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch ind {
	case sequencer.IndicatorSharp:
		l.sharp = false
	case sequencer.IndicatorFlat:
		l.flat = false
	}
}

// Snapshot returns the digit row and indicator states.
func (l *LCD) Snapshot() (digits string, sharp, flat bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return string(l.digits[:]), l.sharp, l.flat
}
