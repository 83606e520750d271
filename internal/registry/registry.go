// Package registry maps variant IDs to game constructors. Variants
// register from init, so frontends can list and build them by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/wall-jump/internal/core"
)

// Game is what a frontend drives. Implementations hold no terminal or
// window state; the platform owns timing, input mapping and drawing.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh run for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by dt seconds with this frame's input.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Resize changes the screen size; the run continues.
	Resize(screenW, screenH int)

	// Render draws into dst. A nil dst is ignored.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), build: f}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
