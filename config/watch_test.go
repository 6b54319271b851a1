package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsTrackedFileOnly(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nightblade.yaml")
	if err := os.WriteFile(cfgPath, []byte("seed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(cfgPath)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	// an untracked sibling must stay silent
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case path := <-w.Events:
		t.Fatalf("unexpected event for untracked file: %s", path)
	case <-time.After(300 * time.Millisecond):
	}

	if err := os.WriteFile(cfgPath, []byte("seed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case path := <-w.Events:
		abs, _ := filepath.Abs(cfgPath)
		if path != abs {
			t.Fatalf("expected event for %s, got %s", abs, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for tracked file")
	}
}

func TestWatcherRejectsEmptySet(t *testing.T) {
	if _, err := NewWatcher(); err == nil {
		t.Fatal("expected error for an empty watch set")
	}
	if _, err := NewWatcher(""); err == nil {
		t.Fatal("expected error when all paths are empty")
	}
}
