package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	data := []byte("variant: walljump\nseed: 9\n")
	id, err := store.SaveReplay(ReplayEntry{GameID: "walljump", Seed: 9, Frames: 120, Duration: 2.5, Data: data})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.ReplayByID(id)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}
	if got.GameID != "walljump" || got.Seed != 9 || got.Frames != 120 || got.Duration != 2.5 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if string(got.Data) != string(data) {
		t.Errorf("Data = %q, want %q", got.Data, data)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestStoreReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.ReplayByID(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReplayByID() err = %v, want ErrNotFound", err)
	}
	if err := store.DeleteReplay(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteReplay() err = %v, want ErrNotFound", err)
	}
}

func TestStoreRejectsEmptyReplay(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveReplay(ReplayEntry{GameID: "walljump"}); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestStoreRecentReplays(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveReplay(ReplayEntry{GameID: "walljump", Seed: int64(i), Frames: i, Data: []byte("x")})
	}
	store.SaveReplay(ReplayEntry{GameID: "walljump_climb", Seed: 99, Data: []byte("y")})

	recent, err := store.RecentReplays("walljump", 3)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 replays with limit, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Seed != 4 || recent[1].Seed != 3 || recent[2].Seed != 2 {
		t.Errorf("Replays not in expected order: %v", recent)
	}
	if recent[0].Data != nil {
		t.Error("list query should not load data")
	}

	all, err := store.RecentReplays("", 0)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 replays across games, got %d", len(all))
	}
}

func TestStoreClearAndCount(t *testing.T) {
	store := openTestStore(t)

	store.SaveReplay(ReplayEntry{GameID: "walljump", Data: []byte("a")})
	id, _ := store.SaveReplay(ReplayEntry{GameID: "walljump", Data: []byte("b")})
	store.SaveReplay(ReplayEntry{GameID: "walljump_return", Data: []byte("c")})

	if n, _ := store.ReplayCount("walljump"); n != 2 {
		t.Errorf("ReplayCount() = %d, want 2", n)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if n, _ := store.ReplayCount("walljump"); n != 1 {
		t.Errorf("ReplayCount() after delete = %d, want 1", n)
	}

	if err := store.ClearReplays("walljump"); err != nil {
		t.Fatalf("ClearReplays() failed: %v", err)
	}
	if n, _ := store.ReplayCount("walljump"); n != 0 {
		t.Errorf("ReplayCount() after clear = %d, want 0", n)
	}
	if n, _ := store.ReplayCount("walljump_return"); n != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}
