package render

import (
	"sort"

	"emoji-solitaire/internal/component"
	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ecs"
	"emoji-solitaire/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom of the screen.
const hudRows = 3

// Cursor is one viewer's selection. Card is meaningful only when HasCard is
// set. Held lists cards the viewer is carrying; they are drawn above
// everything else.
type Cursor struct {
	Stack   component.StackType
	Card    ecs.Entity
	HasCard bool
	Held    []ecs.Entity
}

// Renderer draws the table onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	layout config.Layout
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, layout config.Layout) *Renderer {
	return &Renderer{screen: screen, layout: layout}
}

// Screen returns the screen being drawn on.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// DrawFrame renders pile placeholders and every card. It does not call Show;
// DrawHUD does.
func (r *Renderer) DrawFrame(w *ecs.World, cursor Cursor) {
	r.screen.Fill(' ', tableStyle)
	r.drawPlaceholders(cursor)
	r.drawCards(w, cursor)
}

// drawPlaceholders outlines every pile so empty ones stay visible.
func (r *Renderer) drawPlaceholders(cursor Cursor) {
	for _, s := range component.AllStacks() {
		x, y := r.layout.StackOrigin(s).Cell()
		style := placeholderStyle
		if s == cursor.Stack {
			style = selectedPlaceholderStyle
		}
		r.fillRect(x, y, r.layout.CardWidth, r.layout.CardHeight, '·', style)
		if s.Kind == component.KindFoundation {
			r.putGlyph(x+1, y, component.AllSuits[s.Index%len(component.AllSuits)].Symbol(), style)
		}
	}
}

// renderableCard holds sorting info for card rendering.
type renderableCard struct {
	id    ecs.Entity
	card  component.Card
	stack int
	order int
	held  bool
	pos   component.Position
}

// drawCards renders every card with Card + StackInfo + Position, bottom of
// each pile first, held cards last.
func (r *Renderer) drawCards(w *ecs.World, cursor Cursor) {
	held := system.Dragged(w)
	for _, e := range cursor.Held {
		held[e] = true
	}
	rank := stackRanks()

	var cards []renderableCard
	for _, e := range ecs.Query2[component.Card, component.StackInfo](w) {
		pos, ok := ecs.Get[component.Position](w, e)
		if !ok {
			continue
		}
		card, _ := ecs.Get[component.Card](w, e)
		info, _ := ecs.Get[component.StackInfo](w, e)
		cards = append(cards, renderableCard{
			id:    e,
			card:  card,
			stack: rank[info.Stack],
			order: info.Order,
			held:  held[e],
			pos:   pos,
		})
	}

	sort.Slice(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.held != b.held {
			return !a.held
		}
		if a.stack != b.stack {
			return a.stack < b.stack
		}
		if a.order != b.order {
			return a.order < b.order
		}
		return a.id < b.id
	})

	for _, c := range cards {
		x, y := c.pos.Cell()
		selected := cursor.HasCard && cursor.Card == c.id
		r.drawCard(x, y, c.card, selected || c.held)
	}
}

// drawCard paints one card with its top-left corner at (x, y). Face-up cards
// show their label in the top-left and bottom-right corners.
func (r *Renderer) drawCard(x, y int, card component.Card, highlight bool) {
	cw, ch := r.layout.CardWidth, r.layout.CardHeight
	if !card.FaceUp {
		style := backStyle
		if highlight {
			style = style.Foreground(tcell.ColorYellow)
		}
		r.fillRect(x, y, cw, ch, '▒', style)
		return
	}

	style := faceStyle(card.Suit, highlight)
	r.fillRect(x, y, cw, ch, ' ', style)
	label := card.Label()
	r.drawText(x, y, label, style)
	if ch > 1 {
		r.drawText(x+cw-runewidth.StringWidth(label), y+ch-1, label, style)
	}
}

func (r *Renderer) fillRect(x, y, w, h int, ch rune, style tcell.Style) {
	for dy := range h {
		for dx := range w {
			r.screen.SetContent(x+dx, y+dy, ch, nil, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune symbol) at screen
// position (x, y) and returns the number of columns it occupies.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	width := runewidth.StringWidth(glyph)
	if width == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	return max(width, 1)
}

// stackRanks orders piles the way AllStacks lists them, with the hand last.
func stackRanks() map[component.StackType]int {
	stacks := component.AllStacks()
	out := make(map[component.StackType]int, len(stacks)+1)
	for i, s := range stacks {
		out[s] = i
	}
	out[component.Hand] = len(stacks)
	return out
}
