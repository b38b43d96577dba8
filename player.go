// Package mmlchime plays scores written in a compact note/duration macro
// language: single letters for pitches with optional accidental and length
// modifiers, resolved against a fixed tone table and rendered one token at
// a time through a display and a tone generator.
package mmlchime

import (
	"sync"
	"sync/atomic"
	"time"

	"mmlchime/internal/display"
	"mmlchime/internal/mml"
	"mmlchime/internal/sequencer"
)

// Display is the segmented-display port the player renders into.
type Display = sequencer.Display

// ToneGenerator is the blocking tone port the player sounds notes through.
type ToneGenerator = sequencer.ToneGenerator

type PlayerOption func(*Player)

func WithDisplay(d Display) PlayerOption {
	return func(p *Player) { p.display = d }
}

func WithTone(t ToneGenerator) PlayerOption {
	return func(p *Player) { p.tone = t }
}

// WithSleep replaces the delay primitive used for rest waits (and by the
// default muted tone). Intended for tests and hosts with their own clocks.
func WithSleep(sleep func(time.Duration)) PlayerOption {
	return func(p *Player) { p.sleep = sleep }
}

// WithOnToken observes each token just before it is rendered.
func WithOnToken(fn func(tok mml.Token, p mml.Pitch, d time.Duration)) PlayerOption {
	return func(p *Player) { p.onToken = fn }
}

// Player plays one score at a time, synchronously. A Play call while a
// previous one is still running is a no-op.
type Player struct {
	mu      sync.Mutex
	playing bool
	stop    atomic.Bool
	cfg     mml.Config
	display Display
	tone    ToneGenerator
	sleep   func(time.Duration)
	onToken func(tok mml.Token, p mml.Pitch, d time.Duration)
}

func NewPlayer(cfg mml.Config, opts ...PlayerOption) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Octave = mml.ClampOctave(cfg.Octave)
	p := &Player{cfg: cfg, sleep: time.Sleep}
	for _, opt := range opts {
		opt(p)
	}
	if p.display == nil {
		p.display = display.NewLCD()
	}
	if p.tone == nil {
		p.tone = mutedTone{sleep: p.sleep}
	}
	return p, nil
}

// Play scans and renders the whole score, blocking until it completes or a
// Stop request is honored at a token boundary. If a playback is already in
// progress the call returns immediately without touching any state.
func (p *Player) Play(score string) {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return
	}
	p.playing = true
	p.stop.Store(false)
	p.mu.Unlock()

	sched := sequencer.New(p.cfg, p.display, p.tone, sequencer.Options{
		Sleep:   p.sleep,
		OnToken: p.onToken,
		Stopped: p.stop.Load,
	})
	sched.Run(mml.NewScanner(score))

	p.mu.Lock()
	p.playing = false
	p.mu.Unlock()
}

// Stop requests that the current playback end. It takes effect at the next
// token boundary: a note wait that has already begun runs to completion.
// Stop is a no-op when nothing is playing.
func (p *Player) Stop() {
	p.stop.Store(true)
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Config returns the playback configuration the player was built with
// (octave already clamped).
func (p *Player) Config() mml.Config { return p.cfg }

// mutedTone satisfies ToneGenerator without an audio backend; notes still
// occupy their full duration so timing is preserved.
type mutedTone struct{ sleep func(time.Duration) }

func (m mutedTone) Play(_ mml.Pitch, d time.Duration) { m.sleep(d) }
func (m mutedTone) Off()                              {}
