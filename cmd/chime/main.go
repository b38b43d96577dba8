package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"

	"mmlchime"
	"mmlchime/internal/display"
	"mmlchime/internal/mml"
	"mmlchime/internal/tone"
)

func main() {
	var (
		tempo      = flag.Int("tempo", 120, "tempo in beats per minute")
		length     = flag.Int("length", 4, "default note-length denominator")
		octave     = flag.Int("octave", 4, "octave for the whole piece (1-8)")
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		scorePath  = flag.String("file", "", "path to a score file")
		scoreText  = flag.String("mml", "", "inline score text")
		useMIDI    = flag.Bool("midi", false, "send notes to a MIDI out port instead of the beeper")
		midiPort   = flag.String("midi-port", "", "MIDI out port name (first available when empty)")
		program    = flag.Int("program", 80, "General MIDI program for -midi (80 = square lead)")
		wavPath    = flag.String("wav", "", "render the score to a WAV file instead of playing")
		quiet      = flag.Bool("quiet", false, "display only, no audio output")
	)
	flag.Parse()

	score, err := resolveScoreInput(*scorePath, *scoreText)
	if err != nil {
		log.Fatal(err)
	}
	cfg := mml.Config{TempoBPM: *tempo, DefaultLength: *length, Octave: *octave}

	if *wavPath != "" {
		samples, err := mmlchime.RenderSamples(score, cfg, *sampleRate)
		if err != nil {
			log.Fatal(err)
		}
		data := mmlchime.EncodeWAVFloat32LE(samples, *sampleRate, 1)
		if err := os.WriteFile(*wavPath, data, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s (%.2fs)\n", *wavPath, float64(len(samples))/float64(*sampleRate))
		return
	}

	opts := []mmlchime.PlayerOption{
		mmlchime.WithDisplay(display.NewTerminal(os.Stdout)),
	}
	switch {
	case *quiet:
	case *useMIDI:
		defer gomidi.CloseDriver()
		sink, err := tone.NewMIDISink(*midiPort, uint8(*program))
		if err != nil {
			log.Fatal(err)
		}
		defer sink.Close()
		opts = append(opts, mmlchime.WithTone(sink))
	default:
		beeper, err := tone.NewBeeper(*sampleRate)
		if err != nil {
			log.Fatal(err)
		}
		defer beeper.Close()
		opts = append(opts, mmlchime.WithTone(beeper))
	}

	pl, err := mmlchime.NewPlayer(cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}
	pl.Play(score)
	fmt.Println()
}

func resolveScoreInput(path, inline string) (string, error) {
	if strings.TrimSpace(inline) != "" {
		return inline, nil
	}
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return mmlchime.DemoTune, nil
}
