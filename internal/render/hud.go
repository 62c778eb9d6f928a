package render

import (
	"fmt"
	"strings"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/system"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status bar and the latest message at the bottom of the
// screen, then shows the frame. self is the viewing player's ID and is
// marked with an asterisk.
func (r *Renderer) DrawHUD(w *ecs.World, self uint32, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, StatusLine(w, self), hudStyle.Background(tcell.ColorBlack))

	if e, ok := ecs.FindMatching(w, func(ecs.Entity, component.GameState) bool { return true }); ok {
		gs, _ := ecs.Get[component.GameState](w, e)
		width, _ := r.screen.Size()
		label := gs.Status.String()
		r.drawText(width-len(label)-1, hudY+1, label, tcell.StyleDefault.Foreground(statusColor(gs.Status)))
	}

	if n := len(messages); n > 0 {
		r.drawText(0, hudY+2, messages[n-1], messageStyle)
	}

	r.screen.Show()
}

// StatusLine summarises who is seated and how many cards are left to draw.
func StatusLine(w *ecs.World, self uint32) string {
	var names []string
	for _, e := range ecs.EntitiesWith[component.Player](w) {
		p, _ := ecs.Get[component.Player](w, e)
		name := p.Name
		if p.ID == self {
			name += "*"
		}
		names = append(names, name)
	}
	stock := len(system.CardsInStack(w, component.Stock))
	waste := len(system.CardsInStack(w, component.Waste))
	return fmt.Sprintf("Players: %s  Stock: %d  Waste: %d", strings.Join(names, ", "), stock, waste)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		col += r.putGlyph(col, y, string(ch), style)
	}
}
