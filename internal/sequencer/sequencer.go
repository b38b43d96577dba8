package sequencer

import (
	"time"

	"mmlchime/internal/mml"
)

// Indicator identifies one of the accidental pixels on the display.
type Indicator int

const (
	IndicatorSharp Indicator = iota
	IndicatorFlat
)

// Display is the segmented-display primitive: short text at a digit offset,
// plus independently settable indicator pixels.
type Display interface {
	SetText(s string, pos int)
	SetIndicator(ind Indicator)
	ClearIndicator(ind Indicator)
}

// ToneGenerator sounds one pitch at a time. Play blocks for the full
// duration while sounding p, or silently when p is mml.Rest; the tone is
// gated off before Play returns. Off silences immediately.
type ToneGenerator interface {
	Play(p mml.Pitch, d time.Duration)
	Off()
}

type Options struct {
	// Sleep is the delay primitive used for rest waits. Defaults to
	// time.Sleep. The hardware this models busy-polls a 1 Hz clock, so
	// sub-second precision was never promised.
	Sleep func(time.Duration)
	// OnToken observes each token just before it is rendered.
	OnToken func(tok mml.Token, p mml.Pitch, d time.Duration)
	// Stopped is polled between tokens; when it returns true the run ends
	// early. A note wait that has begun always runs to completion.
	Stopped func() bool
}

// Scheduler renders one score token at a time: update the display, drive
// the tone generator, block for the token's duration, advance. It owns the
// display and tone generator for the duration of a Run call; nothing else
// runs concurrently with it.
type Scheduler struct {
	cfg     mml.Config
	display Display
	tone    ToneGenerator
	opts    Options
}

func New(cfg mml.Config, display Display, tone ToneGenerator, opts Options) *Scheduler {
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return &Scheduler{cfg: cfg, display: display, tone: tone, opts: opts}
}

// Run plays every token the scanner yields and blocks until the score is
// exhausted (or a stop request is seen at a token boundary). It always
// leaves the display blank and the tone generator silent. There is no error
// path: every input byte is either consumed into a token or skipped.
func (s *Scheduler) Run(sc *mml.Scanner) {
	for {
		if s.opts.Stopped != nil && s.opts.Stopped() {
			break
		}
		tok, ok := sc.Next()
		if !ok {
			break
		}
		s.render(tok)
	}
	s.display.SetText(" ", 0)
	s.display.ClearIndicator(IndicatorSharp)
	s.display.ClearIndicator(IndicatorFlat)
	s.tone.Off()
}

func (s *Scheduler) render(tok mml.Token) {
	ms := mml.DurationMS(s.cfg.TempoBPM, tok.Length, s.cfg.DefaultLength)
	dur := time.Duration(ms) * time.Millisecond

	// Markers from the previous note come down before anything new is drawn.
	s.display.ClearIndicator(IndicatorSharp)
	s.display.ClearIndicator(IndicatorFlat)

	if tok.Kind == mml.KindRest {
		s.display.SetText(" ", 0)
		s.tone.Off()
		if s.opts.OnToken != nil {
			s.opts.OnToken(tok, mml.Rest, dur)
		}
		s.opts.Sleep(dur)
		return
	}

	s.display.SetText(string(tok.Letter + ('a' - 'A')), 0)
	switch {
	case tok.Accidental > 0:
		s.display.SetIndicator(IndicatorSharp)
	case tok.Accidental < 0:
		s.display.SetIndicator(IndicatorFlat)
	}

	p := mml.Resolve(tok.Letter, tok.Accidental, s.cfg.Octave)
	if s.opts.OnToken != nil {
		s.opts.OnToken(tok, p, dur)
	}
	s.tone.Play(p, dur)

	s.display.ClearIndicator(IndicatorSharp)
	s.display.ClearIndicator(IndicatorFlat)
}
