package targ

import "github.com/gdamore/tcell/v2"

// Action is what a key press asks the browser to do.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionEnter
	ActionBack
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionEnter:
		return "enter"
	case ActionBack:
		return "back"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// ActionForKey maps a key event to an action. Unmapped keys give ActionNone.
func ActionForKey(event *tcell.EventKey) Action {
	switch event.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyEnter, tcell.KeyRight:
		return ActionEnter
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionBack
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModCtrl != 0 {
			if event.Rune() == 'c' {
				return ActionQuit
			}
			return ActionNone
		}
		switch event.Rune() {
		case 'k':
			return ActionMoveUp
		case 'j':
			return ActionMoveDown
		case 'l':
			return ActionEnter
		case 'h':
			return ActionBack
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}
