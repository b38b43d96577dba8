package mml

import "testing"

func TestResolveCentersOnA1(t *testing.T) {
	if got := Resolve('A', 0, 1); got != 0 {
		t.Fatalf("expected A1 at index 0, got %d", got)
	}
}

func TestResolveAdjacentSemitones(t *testing.T) {
	natural := Resolve('C', 0, 4)
	sharp := Resolve('C', 1, 4)
	if sharp != natural+1 {
		t.Fatalf("expected C#4 one index above C4, got %d and %d", sharp, natural)
	}
}

func TestResolveFlatAtFloorOctave(t *testing.T) {
	got := Resolve('C', -1, 1)
	if got < MinPitch || got > MaxPitch {
		t.Fatalf("expected index in [0,86], got %d", got)
	}
	// With the octave floored at 1, C-flat stays in octave 1 and lands on
	// the same table entry as B1.
	if b1 := Resolve('B', 0, 1); got != b1 {
		t.Fatalf("expected Cb1 == B1 (%d), got %d", b1, got)
	}
}

func TestResolveSharpAtCeilingOctave(t *testing.T) {
	got := Resolve('B', 1, 8)
	if got < MinPitch || got > MaxPitch {
		t.Fatalf("expected index in [0,86], got %d", got)
	}
	// With the octave capped at 8, B-sharp wraps onto C8.
	if c8 := Resolve('C', 0, 8); got != c8 {
		t.Fatalf("expected B#8 == C8 (%d), got %d", c8, got)
	}
}

func TestResolveOctaveRollover(t *testing.T) {
	// B3 sharp carries into octave 4 and meets C4.
	if bs, c := Resolve('B', 1, 3), Resolve('C', 0, 4); bs != c {
		t.Fatalf("expected B#3 == C4, got %d and %d", bs, c)
	}
	// C4 flat borrows from octave 3 and meets B3.
	if cf, b := Resolve('C', -1, 4), Resolve('B', 0, 3); cf != b {
		t.Fatalf("expected Cb4 == B3, got %d and %d", cf, b)
	}
}

func TestResolveClampsToTable(t *testing.T) {
	if got := Resolve('C', 0, 1); got != MinPitch {
		t.Fatalf("expected C1 clamped to index 0, got %d", got)
	}
	if got := Resolve('B', 0, 8); got != MaxPitch {
		t.Fatalf("expected B8 at index 86, got %d", got)
	}
}

func TestResolveUnknownLetter(t *testing.T) {
	if got := Resolve('X', 0, 4); got != Rest {
		t.Fatalf("expected unknown letter to resolve to Rest, got %d", got)
	}
}
