package mmlchime

import (
	"encoding/binary"
	"math"

	"mmlchime/internal/mml"
	"mmlchime/internal/tone"
)

// RenderSamples renders a whole score into a mono float32 buffer without
// real time, using the same scanner, resolver and duration arithmetic as
// live playback, and the same square-wave voice as the beeper.
func RenderSamples(score string, cfg mml.Config, sampleRate int) ([]float32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Octave = mml.ClampOctave(cfg.Octave)
	voice := tone.NewVoice(sampleRate)
	var out []float32
	sc := mml.NewScanner(score)
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		if tok.Kind == mml.KindRest {
			voice.Silence()
		} else {
			voice.SetPitch(mml.Resolve(tok.Letter, tok.Accidental, cfg.Octave))
		}
		ms := mml.DurationMS(cfg.TempoBPM, tok.Length, cfg.DefaultLength)
		seg := make([]float32, sampleRate*ms/1000)
		voice.Render(seg)
		out = append(out, seg...)
	}
	return out, nil
}

// EncodeWAVFloat32LE wraps samples in a WAV container (format 3, float32).
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
