package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultWallJumpConfig() {
		t.Errorf("embedded YAML and DefaultWallJumpConfig diverged:\nyaml: %+v\ncode: %+v", cfg, DefaultWallJumpConfig())
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "obstacles:\n  speed: 320\nwalls:\n  thickness: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.Speed != 320 {
		t.Errorf("Obstacles.Speed = %v, expected 320", cfg.Obstacles.Speed)
	}
	if cfg.Walls.Thickness != 25 {
		t.Errorf("Walls.Thickness = %v, expected 25", cfg.Walls.Thickness)
	}
	// Untouched keys keep defaults.
	if cfg.Player.Size != 30 {
		t.Errorf("Player.Size = %v, expected default 30", cfg.Player.Size)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad syntax", "player: [size"},
		{"zero size", "player:\n  size: 0\n"},
		{"min above base", "difficulty:\n  base_interval: 0.2\n  min_interval: 0.5\n"},
		{"y fraction out of range", "player:\n  y_fraction: 1.5\n"},
		{"negative speedup", "difficulty:\n  speedup_factor: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile() should reject invalid config")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultWallJumpConfig()
	cfg.Obstacles.Speed = 275
	ApplyPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walljump.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("obstacles:\n  speed: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event for %q, expected %q", got, w.Path())
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	// Second close is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
