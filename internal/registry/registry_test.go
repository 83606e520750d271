package registry

import (
	"testing"

	"github.com/vovakirdan/wall-jump/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g stubGame) Resize(int, int) {}
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	var seen []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			seen = append(seen, info.ID+"="+info.Title)
		}
	}
	if len(seen) != 2 || seen[0] != "zz_stub_a=Stub zz_stub_a" || seen[1] != "zz_stub_b=Stub zz_stub_b" {
		t.Errorf("List() order/titles = %v", seen)
	}

	g, err := Create("zz_stub_a")
	if err != nil || g.ID() != "zz_stub_a" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown id succeeded")
	}
	if !Exists("zz_stub_b") || Exists("missing") {
		t.Error("Exists() disagrees with registrations")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
