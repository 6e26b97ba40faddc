package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.toml")

	changed := make(chan struct{}, 8)
	w, err := watchOverrides(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("watchOverrides: %v", err)
	}
	defer w.Close()

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("watch: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("unrelated file triggered a change")
	case <-time.After(300 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("terminal = \"st\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatchOverridesMissingDir(t *testing.T) {
	_, err := watchOverrides(filepath.Join(t.TempDir(), "nope", "overrides.toml"), func() {})
	if err == nil {
		t.Error("watchOverrides succeeded on a missing directory")
	}
}
