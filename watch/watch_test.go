package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExt(t *testing.T) {
	m := Ext(".yaml", ".tengo")
	cases := []struct {
		path string
		want bool
	}{
		{"a/skyline.yaml", true},
		{"a/FILTER.TENGO", true},
		{"a/notes.txt", false},
		{"a/noext", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := m(tc.path); got != tc.want {
				t.Fatalf("Ext(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestFile(t *testing.T) {
	m := File("dir/./skyline.yaml")
	if !m("dir/skyline.yaml") {
		t.Fatalf("expected cleaned path to match")
	}
	if m("dir/other.yaml") {
		t.Fatalf("unexpected match")
	}
}

func TestAny(t *testing.T) {
	m := Any(File("cfg/skyline.yaml"), Ext(".tengo"))
	cases := []struct {
		path string
		want bool
	}{
		{"cfg/skyline.yaml", true},
		{"cfg/scripts/filter.tengo", true},
		{"cfg/other.yaml", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			if got := m(tc.path); got != tc.want {
				t.Fatalf("Any(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestNilWatcher(t *testing.T) {
	var w *Watcher
	if w.Drain() != nil || w.Err() != nil || w.Close() != nil {
		t.Fatalf("nil watcher should be inert")
	}
}

func TestWatcherReportsCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(Ext(".yaml"), dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "skyline.yaml")
	if err := os.WriteFile(target, []byte("fov: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "skyline.yaml" {
			t.Fatalf("unexpected event for %q", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func waitEvent(t *testing.T, w *Watcher, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestWatcherDeliversLastChangeOfBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(nil, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	x := filepath.Join(dir, "x")
	if err := os.Mkdir(x, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("nothing should be delivered inside the quiet window, got %v", got)
	}
	if err := os.Remove(x); err != nil {
		t.Fatalf("remove: %v", err)
	}
	waitEvent(t, w, x)
}

func TestWatcherCreateThenRemove(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(nil, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	x := filepath.Join(dir, "x")
	if err := os.Mkdir(x, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	waitEvent(t, w, x)
	if err := os.Remove(x); err != nil {
		t.Fatalf("remove: %v", err)
	}
	waitEvent(t, w, x)
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(nil, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
