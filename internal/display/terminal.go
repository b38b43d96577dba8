package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"mmlchime/internal/sequencer"
)

// Terminal renders the LCD onto a single terminal line, repainting in place
// after every mutation.
type Terminal struct {
	lcd        *LCD
	out        io.Writer
	frameStyle lipgloss.Style
	digitStyle lipgloss.Style
	markStyle  lipgloss.Style
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		lcd:        NewLCD(),
		out:        out,
		frameStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		digitStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		markStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

func (t *Terminal) SetText(s string, pos int) {
	t.lcd.SetText(s, pos)
	t.repaint()
}

func (t *Terminal) SetIndicator(ind sequencer.Indicator) {
	t.lcd.SetIndicator(ind)
	t.repaint()
}

func (t *Terminal) ClearIndicator(ind sequencer.Indicator) {
	t.lcd.ClearIndicator(ind)
	t.repaint()
}

func (t *Terminal) repaint() {
	digits, sharp, flat := t.lcd.Snapshot()
	mark := " "
	switch {
	case sharp:
		mark = "♯"
	case flat:
		mark = "♭"
	}
	fmt.Fprintf(t.out, "\r%s%s%s %s",
		t.frameStyle.Render("["),
		t.digitStyle.Render(digits),
		t.frameStyle.Render("]"),
		t.markStyle.Render(mark),
	)
}
