package tone

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"mmlchime/internal/mml"
)

// streamReader adapts a Voice to the float32 little-endian interleaved
// stereo stream the audio context consumes. The stream never ends; silence
// is rendered while no note is sounding.
type streamReader struct {
	mu    sync.Mutex
	voice *Voice
	buf   []float32
}

func (r *streamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([]float32, frames)
	}
	r.buf = r.buf[:frames]
	r.voice.Render(r.buf)
	for i, s := range r.buf {
		u := math.Float32bits(s)
		binary.LittleEndian.PutUint32(p[i*8:], u)
		binary.LittleEndian.PutUint32(p[i*8+4:], u)
	}
	return frames * 8, nil
}

func (r *streamReader) Close() error { return nil }

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// Beeper is a single-voice square-wave tone generator on the shared audio
// context. It satisfies the scheduler's ToneGenerator port: Play blocks for
// the requested duration and gates the tone off before returning.
type Beeper struct {
	voice  *Voice
	player *ebitaudio.Player
	sleep  func(time.Duration)
}

func NewBeeper(sampleRate int) (*Beeper, error) {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	voice := NewVoice(sampleRate)
	pl, err := ctx.NewPlayerF32(&streamReader{voice: voice})
	if err != nil {
		return nil, err
	}
	pl.SetBufferSize(50 * time.Millisecond)
	pl.Play()
	return &Beeper{voice: voice, player: pl, sleep: time.Sleep}, nil
}

// Play sounds the pitch (or silence for mml.Rest), blocks for the full
// duration, then gates the voice off.
func (b *Beeper) Play(p mml.Pitch, d time.Duration) {
	b.voice.SetPitch(p)
	b.sleep(d)
	b.voice.Silence()
}

func (b *Beeper) Off() { b.voice.Silence() }

func (b *Beeper) Close() error {
	b.voice.Silence()
	return b.player.Close()
}
