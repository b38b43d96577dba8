package tone

import (
	"errors"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"mmlchime/internal/mml"
)

// midiKeyBase aligns pitch index 0 (A1) with MIDI key 33.
const midiKeyBase = 33

const midiVelocity = 100

// midiKey maps a pitch index onto a MIDI key number.
func midiKey(p mml.Pitch) uint8 {
	return uint8(int(p) + midiKeyBase)
}

// MIDISink plays pitches as MIDI notes on an out port. It satisfies the
// scheduler's ToneGenerator port with the same blocking contract as the
// Beeper. Callers should defer gomidi.CloseDriver on shutdown.
type MIDISink struct {
	out    drivers.Out
	send   func(gomidi.Message) error
	sleep  func(time.Duration)
	active int // key currently sounding, -1 when silent
}

// NewMIDISink opens the named out port, or the first available one when
// name is empty, and selects the given General MIDI program.
func NewMIDISink(name string, program uint8) (*MIDISink, error) {
	var out drivers.Out
	if name == "" {
		outs := gomidi.GetOutPorts()
		if len(outs) == 0 {
			return nil, errors.New("no MIDI out ports available")
		}
		out = outs[0]
	} else {
		found, err := gomidi.FindOutPort(name)
		if err != nil {
			return nil, err
		}
		out = found
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, err
	}
	s := &MIDISink{out: out, send: send, sleep: time.Sleep, active: -1}
	if err := s.send(gomidi.ProgramChange(0, program)); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MIDISink) Play(p mml.Pitch, d time.Duration) {
	if p < mml.MinPitch || p > mml.MaxPitch {
		s.Off()
		s.sleep(d)
		return
	}
	s.Off()
	key := midiKey(p)
	_ = s.send(gomidi.NoteOn(0, key, midiVelocity))
	s.active = int(key)
	s.sleep(d)
	s.Off()
}

func (s *MIDISink) Off() {
	if s.active < 0 {
		return
	}
	_ = s.send(gomidi.NoteOff(0, uint8(s.active)))
	s.active = -1
}

func (s *MIDISink) Close() error {
	s.Off()
	return s.out.Close()
}
