package walljump

// Source identifies the physical origin of an input event.
type Source int

const (
	SourceKey Source = iota
	SourcePointer
	SourceTouch
)

// EventKind is the logical trigger carried by an event.
type EventKind int

const (
	EventPrimary   EventKind = iota // jump, or restart after game over
	EventSecondary                  // in-air return
	EventRestart                    // explicit restart key
)

// Event is one raw, discrete input occurrence.
type Event struct {
	Kind   EventKind
	Source Source
}

// Command is a logical request consumed by the engine on the next tick.
type Command int

const (
	CommandNone Command = iota
	CommandJump
	CommandReturn
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandJump:
		return "jump"
	case CommandReturn:
		return "return"
	case CommandRestart:
		return "restart"
	default:
		return "none"
	}
}

// Router turns events into at most one command each and holds them
// until the next tick drains them.
type Router struct {
	variant Variant
	pending []Command
}

// NewRouter creates a router for the given variant.
func NewRouter(v Variant) *Router {
	return &Router{variant: v}
}

// Route maps an event to a command against the current state without
// queueing it. CommandNone means the event is ignored.
func (r *Router) Route(ev Event, s State, vp Viewport, p Params) Command {
	switch ev.Kind {
	case EventRestart:
		if s.GameOver {
			return CommandRestart
		}
	case EventPrimary:
		if s.GameOver {
			if r.variant.RestartOnAction {
				return CommandRestart
			}
			return CommandNone
		}
		if !s.Jumping || r.variant.AirJump {
			return CommandJump
		}
		// Single-button play: a mid-air press in the band turns back.
		if r.variant.AllowReturn && !s.Returning && s.InReturnBand(p, vp) {
			return CommandReturn
		}
	case EventSecondary:
		if s.GameOver || !r.variant.AllowReturn {
			return CommandNone
		}
		if s.Jumping && !s.Returning && s.InReturnBand(p, vp) {
			return CommandReturn
		}
	}
	return CommandNone
}

// Push routes an event and queues the resulting command.
// It reports whether a command was queued.
func (r *Router) Push(ev Event, s State, vp Viewport, p Params) bool {
	cmd := r.Route(ev, s, vp, p)
	if cmd == CommandNone {
		return false
	}
	r.pending = append(r.pending, cmd)
	return true
}

// Drain returns the queued commands and empties the queue.
func (r *Router) Drain() []Command {
	if len(r.pending) == 0 {
		return nil
	}
	cmds := r.pending
	r.pending = nil
	return cmds
}

// Pending returns the number of queued commands.
func (r *Router) Pending() int {
	return len(r.pending)
}
