package core

// Action is what a frontend asks of a game for one frame, independent of
// the key, button or touch that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionReturn // turn back mid-jump
	ActionPause
	ActionRestart
	ActionBack
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionJump:    "jump",
	ActionReturn:  "return",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionBack:    "back",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed since the previous tick.
// Drivers clear it after every step so a press is seen exactly once.
type InputFrame struct {
	Actions map[Action]bool
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set records a press. The zero InputFrame is usable.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame in place, keeping the map.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for a, on := range f.Actions {
		c.Actions[a] = on
	}
	return c
}
