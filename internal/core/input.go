package core

// Action represents a semantic game action, abstracted from physical key presses.
// Every action is edge-triggered: a host sets it once per physical press.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionStart        // Enter, Space - start a round
	ActionPause        // P, Escape - pause the round
	ActionEnd          // X - end the current round
	ActionAny          // any key, click or touch
	ActionBack         // B - back to menu
	ActionQuit         // Q, Ctrl+C - exit game/session
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
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionEnd:
		return "End"
	case ActionAny:
		return "Any"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lowercase action name to an Action.
// Unknown names map to ActionNone.
func ParseAction(name string) Action {
	switch name {
	case "up":
		return ActionUp
	case "down":
		return ActionDown
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "start":
		return ActionStart
	case "pause":
		return ActionPause
	case "end":
		return ActionEnd
	case "any":
		return ActionAny
	default:
		return ActionNone
	}
}

// InputFrame collects the discrete presses that arrived during one host frame.
// Directions keep their arrival order because the game queues them.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Directions lists direction presses in arrival order.
	Directions []Action

	// Pointer is a click or touch in logical pixels, already corrected for
	// letterboxing by the host. Nil when there was none.
	Pointer *Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.Directions = append(f.Directions, a)
	}
}

// Point records a pointer press in logical pixels.
func (f *InputFrame) Point(x, y float64) {
	f.Pointer = &Vec2{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing at all was pressed.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Pointer == nil
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Directions = f.Directions[:0]
	f.Pointer = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Directions = append(clone.Directions, f.Directions...)
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}

// IsDirection reports whether the action is one of the four directions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
