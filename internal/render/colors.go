package render

import (
	"emoji-solitaire/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Table colors. Card faces are white with the suit in red or black; card
// backs are a navy hatch.
var (
	tableStyle               = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	placeholderStyle         = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorGreen)
	selectedPlaceholderStyle = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorYellow)
	backStyle                = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorSilver)
	hudStyle                 = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	messageStyle             = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

// SuitColor returns the foreground used for a suit.
func SuitColor(s component.Suit) tcell.Color {
	if s.Red() {
		return tcell.ColorRed
	}
	return tcell.ColorBlack
}

// faceStyle is the style of a face-up card. Highlighted cards get a yellow
// face.
func faceStyle(s component.Suit, highlight bool) tcell.Style {
	bg := tcell.ColorWhite
	if highlight {
		bg = tcell.ColorLightYellow
	}
	return tcell.StyleDefault.Background(bg).Foreground(SuitColor(s))
}

// statusColor picks the HUD color for a game status.
func statusColor(s component.GameStatus) tcell.Color {
	switch s {
	case component.Won:
		return tcell.ColorGold
	case component.GameOver:
		return tcell.ColorRed
	}
	return tcell.ColorWhite
}
