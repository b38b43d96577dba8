package mmlchime

import "sync"

// Event is an input event dispatched into a Face by the host: activation,
// the play button, the stop button, and teardown when the host moves on.
type Event int

const (
	EventActivate Event = iota
	EventPlay
	EventStop
	EventResign
)

// DemoTune is the tune a Face plays when no other score is configured.
const DemoTune = "c8 d-8 d8 e8 e-8 f8 f+8 g8 g+8 a8 b8 c2 r4 f+2 c8 c8 g4 r8"

// Face glues host input events to a Player the way the original demo
// screen did: activation shows a banner, the play button starts the tune
// with "play"/"done" status text, and resigning silences the tone if a
// tune is still sounding.
type Face struct {
	player *Player
	tune   string
	status func(string)
	wg     sync.WaitGroup
}

func NewFace(player *Player, tune string) *Face {
	if tune == "" {
		tune = DemoTune
	}
	return &Face{player: player, tune: tune}
}

// OnStatus installs a callback for the "play"/"done" status text. Call it
// before the first event is dispatched.
func (f *Face) OnStatus(fn func(string)) { f.status = fn }

// HandleEvent dispatches one input event. Playback runs on its own
// goroutine so the event source stays responsive; the player's own guard
// makes a play event during playback a no-op.
func (f *Face) HandleEvent(ev Event) {
	switch ev {
	case EventActivate:
		f.player.display.SetText("mu ", 0)
		f.player.display.SetText("sic", 7)
	case EventPlay:
		if f.player.IsPlaying() {
			return
		}
		f.setStatus("play")
		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			f.player.Play(f.tune)
			f.setStatus("done")
		}()
	case EventStop:
		f.player.Stop()
	case EventResign:
		f.player.Stop()
		if f.player.IsPlaying() {
			f.player.tone.Off()
		}
	}
}

// Wait blocks until any in-flight playback has finished.
func (f *Face) Wait() { f.wg.Wait() }

func (f *Face) setStatus(s string) {
	if f.status != nil {
		f.status(s)
	}
}
