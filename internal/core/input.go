package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move up
	ActionDown             // S, Down arrow - move down
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionSprint           // Shift - sprint while moving
	ActionDodge            // Space - evade along movement direction
	ActionSwitch           // R - switch between bow and polearm
	ActionPrimary          // Left mouse / J - shoot or slash
	ActionSecondary        // Right mouse / K - thrust
	ActionBlessing         // E - first god power
	ActionSmite            // Q - second god power
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key after game over
	ActionQuit             // Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSprint:
		return "Sprint"
	case ActionDodge:
		return "Dodge"
	case ActionSwitch:
		return "Switch"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionBlessing:
		return "Blessing"
	case ActionSmite:
		return "Smite"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Held actions persist across frames until released; pressed actions
// are edge-triggered and cleared after every tick.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
	pointer Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Press marks an action as pressed this frame and held until released.
func (f *InputFrame) Press(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held without registering a fresh press.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// Release marks an action as no longer held.
func (f *InputFrame) Release(a Action) {
	if f.held != nil {
		delete(f.held, a)
	}
}

// SetPointer records the pointer position in world coordinates.
func (f *InputFrame) SetPointer(p Vec2) {
	f.pointer = p
}

// Down reports whether the action is currently held.
func (f InputFrame) Down(a Action) bool {
	return f.held[a]
}

// Pressed reports whether the action was pressed during this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Pointer returns the pointer position in world coordinates.
func (f InputFrame) Pointer() Vec2 {
	return f.pointer
}

// EndFrame clears edge-triggered presses for the next tick.
func (f *InputFrame) EndFrame() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// Clear resets all held and pressed actions.
func (f *InputFrame) Clear() {
	f.EndFrame()
	for k := range f.held {
		delete(f.held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	clone.pointer = f.pointer
	return clone
}

func (f *InputFrame) ensure() {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
}
