package mmlchime

import (
	"sync"
	"testing"
	"time"

	"mmlchime/internal/mml"
)

type blockingTone struct {
	mu      sync.Mutex
	plays   int
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingTone() *blockingTone {
	return &blockingTone{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingTone) Play(_ mml.Pitch, _ time.Duration) {
	b.mu.Lock()
	b.plays++
	b.mu.Unlock()
	b.once.Do(func() {
		close(b.started)
		<-b.release
	})
}

func (b *blockingTone) Off() {}

func (b *blockingTone) playCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.plays
}

func TestNewPlayerRejectsBadConfig(t *testing.T) {
	if _, err := NewPlayer(mml.Config{TempoBPM: 0, DefaultLength: 4, Octave: 4}); err == nil {
		t.Fatalf("expected non-positive tempo to be rejected")
	}
	if _, err := NewPlayer(mml.Config{TempoBPM: 120, DefaultLength: 0, Octave: 4}); err == nil {
		t.Fatalf("expected non-positive default length to be rejected")
	}
}

func TestNewPlayerClampsOctave(t *testing.T) {
	p, err := NewPlayer(mml.Config{TempoBPM: 120, DefaultLength: 4, Octave: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Config().Octave; got != 8 {
		t.Fatalf("expected octave clamped to 8, got %d", got)
	}
}

func TestPlayReentrancyNoOp(t *testing.T) {
	bt := newBlockingTone()
	p, err := NewPlayer(mml.DefaultConfig(), WithTone(bt), WithSleep(func(time.Duration) {}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.Play("c4 d4")
	}()
	<-bt.started

	if !p.IsPlaying() {
		t.Fatalf("expected player to report playing")
	}
	p.Play("e4") // must return immediately as a no-op
	if got := bt.playCount(); got != 1 {
		t.Fatalf("expected the second Play to be a no-op, saw %d tone commands", got)
	}

	close(bt.release)
	wg.Wait()
	if p.IsPlaying() {
		t.Fatalf("expected player idle after the score finished")
	}
}

func TestStopHonoredAtTokenBoundary(t *testing.T) {
	var tokens int
	var p *Player
	var err error
	p, err = NewPlayer(mml.DefaultConfig(),
		WithSleep(func(time.Duration) {}),
		WithOnToken(func(mml.Token, mml.Pitch, time.Duration) {
			tokens++
			p.Stop()
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Play("c4 d4 e4")
	if tokens != 1 {
		t.Fatalf("expected playback to end after the first token, rendered %d", tokens)
	}
	if p.IsPlaying() {
		t.Fatalf("expected player idle after stop")
	}
}

func TestDemoTuneTokenCount(t *testing.T) {
	var tokens int
	p, err := NewPlayer(mml.DefaultConfig(),
		WithSleep(func(time.Duration) {}),
		WithOnToken(func(mml.Token, mml.Pitch, time.Duration) { tokens++ }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Play(DemoTune)
	if tokens != 18 {
		t.Fatalf("expected 18 tokens in the demo tune, got %d", tokens)
	}
}
