package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ithaca/internal/core"
)

// DefaultHoldTicks is how many ticks a key stays held after its last key
// event. Terminals report presses and auto-repeats but never releases, so a
// held key is one that keeps repeating.
const DefaultHoldTicks = 18

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// KeyMapper turns Bubble Tea key and mouse messages into one InputFrame per
// tick.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // ticks left
	buttons   map[core.Action]bool
	pressed   []core.Action

	mouseX, mouseY int
	mouseSeen      bool
}

// NewKeyMapper creates a mapper with the given hold time; zero or less uses
// DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		buttons:   make(map[core.Action]bool),
	}
}

// MapKey translates a key to a game action. sprint is set for shifted
// movement keys. Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, sprint bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "W", "shift+up":
		return core.ActionUp, true
	case "S", "shift+down":
		return core.ActionDown, true
	case "A", "shift+left":
		return core.ActionLeft, true
	case "D", "shift+right":
		return core.ActionRight, true
	case " ":
		return core.ActionDodge, false
	case "r", "tab":
		return core.ActionSwitch, false
	case "j", "f":
		return core.ActionPrimary, false
	case "k", "g":
		return core.ActionSecondary, false
	case "e":
		return core.ActionBlessing, false
	case "q":
		return core.ActionSmite, false
	case "p":
		return core.ActionPause, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "b":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// HandleKey records a key event and returns the action it mapped to.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg) core.Action {
	action, sprint := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionConfirm, core.ActionBack:
		return action
	}

	if _, repeat := km.held[action]; !repeat {
		km.pressed = append(km.pressed, action)
	}
	km.held[action] = km.holdTicks
	if o, ok := opposite[action]; ok {
		delete(km.held, o)
	}
	if sprint {
		km.held[core.ActionSprint] = km.holdTicks
	} else if _, ok := opposite[action]; ok {
		delete(km.held, core.ActionSprint)
	}
	return action
}

// HandleMouse tracks the pointer and the two attack buttons, which unlike
// keys do report releases.
func (km *KeyMapper) HandleMouse(msg tea.MouseMsg) {
	km.mouseX, km.mouseY = msg.X, msg.Y
	km.mouseSeen = true

	var action core.Action
	switch msg.Button {
	case tea.MouseButtonLeft:
		action = core.ActionPrimary
	case tea.MouseButtonRight:
		action = core.ActionSecondary
	default:
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !km.buttons[action] {
			km.pressed = append(km.pressed, action)
		}
		km.buttons[action] = true
	case tea.MouseActionRelease:
		delete(km.buttons, action)
	}
}

// Frame builds the input for the next tick and ages held keys. The pointer
// is the mouse position through cam once the mouse has moved, aim before.
func (km *KeyMapper) Frame(cam Camera, aim core.Vec2) core.InputFrame {
	in := core.NewInputFrame()
	for a := range km.held {
		in.Hold(a)
	}
	for a := range km.buttons {
		in.Hold(a)
	}
	for _, a := range km.pressed {
		in.Press(a)
	}
	km.pressed = km.pressed[:0]

	if km.mouseSeen {
		in.SetPointer(cam.ToWorld(km.mouseX, km.mouseY))
	} else {
		in.SetPointer(aim)
	}

	for a, n := range km.held {
		if n <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = n - 1
		}
	}
	return in
}

// Reset forgets every held key and button.
func (km *KeyMapper) Reset() {
	clear(km.held)
	clear(km.buttons)
	km.pressed = km.pressed[:0]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionBoard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionBoard
	}
	return MenuActionNone
}
