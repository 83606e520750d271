package core

import "testing"

func TestInputFrameClearKeepsFrameUsable(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Fatal("zero frame reports a press")
	}
	f.Set(ActionJump)
	f.Set(ActionReturn)

	c := f.Clone()
	f.Clear()
	if f.Has(ActionJump) || len(f.Actions) != 0 {
		t.Errorf("Clear() left %v", f.Actions)
	}
	if !c.Has(ActionJump) || !c.Has(ActionReturn) {
		t.Errorf("clone shares state with the cleared frame: %v", c.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionJump, "jump"},
		{ActionReturn, "return"},
		{ActionQuit, "quit"},
		{Action(99), "unknown"},
		{Action(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
