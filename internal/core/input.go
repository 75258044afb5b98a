package core

// Action represents a semantic action, abstracted from physical key presses.
// This allows scenes to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move paddle / menu cursor left
	ActionRight            // D, Right arrow - move paddle / menu cursor right
	ActionUp               // W, Up arrow - menu cursor up
	ActionDown             // S, Down arrow - menu cursor down
	ActionFire             // Space - fire paddle gun
	ActionLaunch           // Up, W, X - hold to carry, release to launch
	ActionConfirm          // Enter - confirm selection / commit text field
	ActionBack             // Escape - back, pause, toggle editor test play
	ActionPause            // P - pause/unpause game
	ActionQuit             // Ctrl+C - exit session
	ActionUndo             // Ctrl+Z - undo edit
	ActionRedo             // Ctrl+Y - redo edit
	ActionTab              // Tab - switch text field
	ActionBackspace        // Backspace - delete last typed character
	ActionHelp             // ? - toggle help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionTab:
		return "Tab"
	case ActionBackspace:
		return "Backspace"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// InputFrame represents the discrete actions triggered during one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Controls is the held-key state the world simulation reads every frame.
// Terminals report key presses, not releases, so the platform layer derives
// these from a short hold window after each press.
type Controls struct {
	Left          bool // move paddle left
	Right         bool // move paddle right
	Fire          bool // fire while the gun is active
	CarryHeld     bool // keep carried balls on the paddle
	CarryReleased bool // carry key went up this frame
}

// Pointer is the mouse state for one frame, in screen cells.
type Pointer struct {
	X, Y          int  // cell under the pointer
	Valid         bool // false until the first mouse event arrives
	LeftDown      bool
	LeftPressed   bool
	LeftReleased  bool
	RightDown     bool
	RightPressed  bool
	RightReleased bool
}

// Pos returns the pixel-space centre of the cell under the pointer.
func (p Pointer) Pos() Vec2 {
	return CellCenter(p.X, p.Y)
}

// Message is an out-of-band request delivered by the host alongside input.
type Message interface {
	hostMessage()
}

// LoadPackMessage asks the application to decode and load a level pack.
type LoadPackMessage struct {
	Data   []byte
	Source string // file path or other origin, for logs and titles
	Err    error  // reading Source failed; Data is unusable
}

func (LoadPackMessage) hostMessage() {}

// Frame bundles everything a scene needs for one update.
type Frame struct {
	Delta    float64 // seconds since the previous frame
	Input    InputFrame
	Controls Controls
	Pointer  Pointer
	Text     []rune // printable characters typed this frame
	Messages []Message
}
