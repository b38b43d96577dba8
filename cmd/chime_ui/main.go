package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mmlchime"
	"mmlchime/internal/display"
	"mmlchime/internal/mml"
	"mmlchime/internal/tone"
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	digitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

type statusMsg string

type model struct {
	face     *mmlchime.Face
	lcd      *display.LCD
	statusCh chan string
	status   string
	quitting bool
}

func listenStatus(ch chan string) tea.Cmd {
	return func() tea.Msg { return statusMsg(<-ch) }
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(listenStatus(m.statusCh), tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.face.HandleEvent(mmlchime.EventResign)
			return m, tea.Quit
		case "p", "enter":
			m.face.HandleEvent(mmlchime.EventPlay)
		case "s":
			m.face.HandleEvent(mmlchime.EventStop)
		case "a":
			m.face.HandleEvent(mmlchime.EventActivate)
		}
	case statusMsg:
		m.status = string(msg)
		return m, listenStatus(m.statusCh)
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	digits, sharp, flat := m.lcd.Snapshot()
	mark := " "
	switch {
	case sharp:
		mark = "♯"
	case flat:
		mark = "♭"
	}
	screen := frameStyle.Render(digitStyle.Render(digits) + " " + markStyle.Render(mark))
	status := statusStyle.Render(m.status)
	help := helpStyle.Render("p/enter play · s stop · a banner · q quit")
	return fmt.Sprintf("%s\n%s\n%s\n", screen, status, help)
}

func main() {
	var (
		tempo      = flag.Int("tempo", 120, "tempo in beats per minute")
		length     = flag.Int("length", 4, "default note-length denominator")
		octave     = flag.Int("octave", 4, "octave for the whole piece (1-8)")
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		scorePath  = flag.String("file", "", "path to a score file")
		scoreText  = flag.String("mml", "", "inline score text")
		quiet      = flag.Bool("quiet", false, "display only, no audio output")
	)
	flag.Parse()

	score := *scoreText
	if strings.TrimSpace(score) == "" && strings.TrimSpace(*scorePath) != "" {
		data, err := os.ReadFile(*scorePath)
		if err != nil {
			log.Fatal(err)
		}
		score = string(data)
	}

	lcd := display.NewLCD()
	cfg := mml.Config{TempoBPM: *tempo, DefaultLength: *length, Octave: *octave}
	opts := []mmlchime.PlayerOption{mmlchime.WithDisplay(lcd)}
	if !*quiet {
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

	statusCh := make(chan string, 8)
	face := mmlchime.NewFace(pl, score)
	face.OnStatus(func(s string) {
		select {
		case statusCh <- s:
		default:
		}
	})
	face.HandleEvent(mmlchime.EventActivate)

	m := model{face: face, lcd: lcd, statusCh: statusCh}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
	face.Wait()
}
