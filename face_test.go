package mmlchime

import (
	"sync"
	"testing"
	"time"

	"mmlchime/internal/display"
	"mmlchime/internal/mml"
)

func newFastPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(mml.DefaultConfig(), WithSleep(func(time.Duration) {}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestFaceActivateBanner(t *testing.T) {
	p := newFastPlayer(t)
	f := NewFace(p, "")
	f.HandleEvent(EventActivate)
	lcd, ok := p.display.(*display.LCD)
	if !ok {
		t.Fatalf("expected the default LCD display")
	}
	digits, _, _ := lcd.Snapshot()
	if digits != "mu     sic" {
		t.Fatalf("expected banner, got %q", digits)
	}
}

func TestFacePlayReportsStatus(t *testing.T) {
	p := newFastPlayer(t)
	f := NewFace(p, "")

	var mu sync.Mutex
	var statuses []string
	f.OnStatus(func(s string) {
		mu.Lock()
		statuses = append(statuses, s)
		mu.Unlock()
	})

	f.HandleEvent(EventPlay)
	f.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(statuses) != 2 || statuses[0] != "play" || statuses[1] != "done" {
		t.Fatalf("expected play then done, got %v", statuses)
	}
	if p.IsPlaying() {
		t.Fatalf("expected player idle after the tune")
	}
}

func TestFaceStopAndResignWhileIdle(t *testing.T) {
	p := newFastPlayer(t)
	f := NewFace(p, "")
	// Neither event may disturb an idle player.
	f.HandleEvent(EventStop)
	f.HandleEvent(EventResign)
	if p.IsPlaying() {
		t.Fatalf("expected player to stay idle")
	}
}

func TestFaceDefaultsToDemoTune(t *testing.T) {
	f := NewFace(newFastPlayer(t), "")
	if f.tune != DemoTune {
		t.Fatalf("expected the demo tune, got %q", f.tune)
	}
	f = NewFace(newFastPlayer(t), "c4")
	if f.tune != "c4" {
		t.Fatalf("expected custom tune kept, got %q", f.tune)
	}
}
