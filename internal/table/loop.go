package table

import (
	"context"

	"emoji-solitaire/internal/ctxlog"
	"emoji-solitaire/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// RunLoop is the per-session goroutine. It reads input, applies actions and
// redraws on demand. Blocks until the player quits, the screen closes or ctx
// is cancelled.
func (s *Server) RunLoop(ctx context.Context, sess *Session) {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := sess.Screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	sess.signal()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventCh:
			if !ok {
				return // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				sess.Screen.Sync()
				sess.signal()
			case *tcell.EventKey:
				switch action := keyToAction(ev); action {
				case ActionNone:
				case ActionQuit:
					if confirmQuit(sess, eventCh) {
						return
					}
					sess.signal()
				case ActionHelp:
					runHelp(sess, eventCh)
					sess.signal()
				default:
					s.Handle(ctx, sess, action)
				}
			}
		case <-sess.RenderCh:
			s.renderSession(ctx, sess)
		}
	}
}

// renderSession draws the session's replica. A panic while drawing poisons
// the replica; the next snapshot overwrites it.
func (s *Server) renderSession(ctx context.Context, sess *Session) {
	messages := sess.Messages()
	err := sess.Replica.Do(func(w *ecs.World) {
		sess.Renderer.DrawFrame(w, sess.cursor(w))
		sess.Renderer.DrawHUD(w, sess.ID, messages)
	})
	if err != nil {
		ctxlog.FromContext(ctx).Error("render failed", "player", sess.Name, "err", err)
	}
}

// runHelp shows a keybinding reference overlay. Any key dismisses it.
func runHelp(sess *Session, eventCh <-chan tcell.Event) {
	lines := []string{
		"── Cursor ────────────────────────────",
		"  ← → / h l           Select pile",
		"  ↑ ↓ / k j           Select card in pile",
		"",
		"── Cards ─────────────────────────────",
		"  Space               Pick up",
		"  ← →                 Carry to pile",
		"  Enter               Put down",
		"  Esc                 Put back",
		"  s                   Draw / recycle stock",
		"  n                   New deal",
		"",
		"── Game ──────────────────────────────",
		"  q                   Leave the table",
		"  ?                   This help",
		"",
		"  [any key to close]",
	}
	drawBox(sess.Screen, " Controls ", lines, 46)
	for {
		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			sess.Screen.Sync()
			drawBox(sess.Screen, " Controls ", lines, 46)
		case *tcell.EventKey:
			return
		}
	}
}

// confirmQuit shows a "Really leave? (y/n)" prompt. Returns true if confirmed.
func confirmQuit(sess *Session, eventCh <-chan tcell.Event) bool {
	prompt := []string{"Really leave the table? (y/n)"}
	drawBox(sess.Screen, "", prompt, len([]rune(prompt[0]))+6)
	for {
		ev, ok := <-eventCh
		if !ok {
			return true // disconnected
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			sess.Screen.Sync()
			drawBox(sess.Screen, "", prompt, len([]rune(prompt[0]))+6)
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			default:
				return false
			}
		}
	}
}

// drawBox clears the screen and draws a centred, bordered box holding lines.
func drawBox(screen tcell.Screen, header string, lines []string, width int) {
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	screen.Clear()
	sw, sh := screen.Size()
	boxH := len(lines) + 2
	x0 := (sw - width) / 2
	y0 := (sh - boxH) / 2

	for col := x0; col < x0+width; col++ {
		screen.SetContent(col, y0, '─', nil, borderStyle)
		screen.SetContent(col, y0+boxH-1, '─', nil, borderStyle)
	}
	for row := y0; row < y0+boxH; row++ {
		screen.SetContent(x0, row, '│', nil, borderStyle)
		screen.SetContent(x0+width-1, row, '│', nil, borderStyle)
	}
	screen.SetContent(x0, y0, '┌', nil, borderStyle)
	screen.SetContent(x0+width-1, y0, '┐', nil, borderStyle)
	screen.SetContent(x0, y0+boxH-1, '└', nil, borderStyle)
	screen.SetContent(x0+width-1, y0+boxH-1, '┘', nil, borderStyle)

	hx := x0 + (width-len([]rune(header)))/2
	for i, r := range []rune(header) {
		screen.SetContent(hx+i, y0, r, nil, hdrStyle)
	}
	for i, line := range lines {
		x := x0 + 2
		for _, r := range line {
			screen.SetContent(x, y0+1+i, r, nil, bodyStyle)
			x++
		}
	}
	screen.Show()
}
