package table

import "github.com/gdamore/tcell/v2"

// Action is a player request decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionPickUp
	ActionDrop
	ActionCancel
	ActionDraw
	ActionNewDeal
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionPickUp:
		return "pick-up"
	case ActionDrop:
		return "drop"
	case ActionCancel:
		return "cancel"
	case ActionDraw:
		return "draw"
	case ActionNewDeal:
		return "new-deal"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyEnter:
		return ActionDrop
	case tcell.KeyEscape:
		return ActionCancel
	}
	switch ev.Rune() {
	case 'h', 'H':
		return ActionLeft
	case 'l', 'L':
		return ActionRight
	case 'k', 'K':
		return ActionUp
	case 'j', 'J':
		return ActionDown
	case ' ':
		return ActionPickUp
	case 's', 'S':
		return ActionDraw
	case 'n', 'N':
		return ActionNewDeal
	case '?':
		return ActionHelp
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
