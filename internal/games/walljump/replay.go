package walljump

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wall-jump/internal/config"
)

// Frame is one recorded engine tick.
type Frame struct {
	DT       float64   `yaml:"dt"`
	Commands []Command `yaml:"cmds,omitempty"`
	Viewport *Viewport `yaml:"vp,omitempty"` // set only when the viewport changed
}

// Replay is everything needed to reproduce a run: the engine is
// deterministic given its tuning, seed, deltas, viewports and commands.
type Replay struct {
	Variant  string                `yaml:"variant"`
	Seed     int64                 `yaml:"seed"`
	Viewport Viewport              `yaml:"viewport"`
	Config   config.WallJumpConfig `yaml:"config"`
	Frames   []Frame               `yaml:"frames"`

	// Result, filled in when the run ends.
	Elapsed float64 `yaml:"elapsed"`
	Cause   string  `yaml:"cause,omitempty"`
}

// ErrEmptyReplay is returned when decoding a replay without frames.
var ErrEmptyReplay = errors.New("walljump: replay has no frames")

// Recorder accumulates frames of the current run.
type Recorder struct {
	replay Replay
	lastVP Viewport
}

// NewRecorder starts recording a run.
func NewRecorder(variant string, seed int64, vp Viewport, cfg config.WallJumpConfig) *Recorder {
	return &Recorder{
		replay: Replay{Variant: variant, Seed: seed, Viewport: vp, Config: cfg},
		lastVP: vp,
	}
}

// Record appends one tick.
func (r *Recorder) Record(dt float64, cmds []Command, vp Viewport) {
	f := Frame{DT: dt}
	if len(cmds) > 0 {
		f.Commands = append([]Command(nil), cmds...)
	}
	if vp != r.lastVP {
		v := vp
		f.Viewport = &v
		r.lastVP = vp
	}
	r.replay.Frames = append(r.replay.Frames, f)
}

// Finish seals the recording with the run's outcome.
func (r *Recorder) Finish(s State) Replay {
	r.replay.Elapsed = s.ElapsedTime
	r.replay.Cause = s.Cause.String()
	return r.replay
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.replay.Frames)
}

// Encode serializes a replay to YAML.
func (r Replay) Encode() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("walljump: encode replay: %w", err)
	}
	return data, nil
}

// DecodeReplay parses a replay produced by Encode.
func DecodeReplay(data []byte) (Replay, error) {
	var r Replay
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Replay{}, fmt.Errorf("walljump: decode replay: %w", err)
	}
	if len(r.Frames) == 0 {
		return Replay{}, ErrEmptyReplay
	}
	if _, ok := VariantByID(r.Variant); !ok {
		return Replay{}, fmt.Errorf("walljump: replay has unknown variant %q", r.Variant)
	}
	return r, nil
}

// Run re-simulates the replay from scratch and returns the final state.
// The visit callback, if non-nil, sees every intermediate state.
func (r Replay) Run(visit func(i int, s State, vp Viewport)) (State, error) {
	v, ok := VariantByID(r.Variant)
	if !ok {
		return State{}, fmt.Errorf("walljump: replay has unknown variant %q", r.Variant)
	}
	if err := r.Config.Validate(); err != nil {
		return State{}, fmt.Errorf("walljump: replay config: %w", err)
	}

	p := NewParams(v, r.Config)
	bits := NewRandBits(r.Seed)
	vp := r.Viewport
	s := NewState(p, vp)
	for i, f := range r.Frames {
		if f.Viewport != nil {
			vp = *f.Viewport
		}
		s = Advance(s, f.DT, f.Commands, vp, bits, p)
		if visit != nil {
			visit(i, s, vp)
		}
	}
	return s, nil
}

// Cursor steps through a replay one frame at a time.
type Cursor struct {
	replay Replay
	params Params
	bits   *RandBits
	vp     Viewport
	state  State
	next   int
	clock  float64 // simulated seconds consumed so far
}

// NewCursor prepares a replay for incremental playback.
func NewCursor(r Replay) (*Cursor, error) {
	v, ok := VariantByID(r.Variant)
	if !ok {
		return nil, fmt.Errorf("walljump: replay has unknown variant %q", r.Variant)
	}
	if err := r.Config.Validate(); err != nil {
		return nil, fmt.Errorf("walljump: replay config: %w", err)
	}
	p := NewParams(v, r.Config)
	return &Cursor{
		replay: r,
		params: p,
		bits:   NewRandBits(r.Seed),
		vp:     r.Viewport,
		state:  NewState(p, r.Viewport),
	}, nil
}

// AdvanceTo applies every frame that ends at or before t seconds of
// simulated time. It reports whether frames remain.
func (c *Cursor) AdvanceTo(t float64) bool {
	for c.next < len(c.replay.Frames) {
		f := c.replay.Frames[c.next]
		if c.clock+f.DT > t {
			break
		}
		if f.Viewport != nil {
			c.vp = *f.Viewport
		}
		c.state = Advance(c.state, f.DT, f.Commands, c.vp, c.bits, c.params)
		c.clock += f.DT
		c.next++
	}
	return c.next < len(c.replay.Frames)
}

// State returns the state after the frames applied so far.
func (c *Cursor) State() State { return c.state }

// Viewport returns the viewport of the last applied frame.
func (c *Cursor) Viewport() Viewport { return c.vp }

// Params returns the tuning the replay was recorded with.
func (c *Cursor) Params() Params { return c.params }

// Done reports whether every frame has been applied.
func (c *Cursor) Done() bool { return c.next >= len(c.replay.Frames) }
