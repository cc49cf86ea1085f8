package nav

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func newTestNavigator(showFiles bool, filter Filter) *Navigator {
	n := New(showFiles, filter)
	n.Drives = func() []string { return []string{`C:\`, `D:\`} }
	return n
}

func TestLoadDrives(t *testing.T) {
	n := newTestNavigator(false, nil)
	listing := n.Load("")
	if listing.Denied {
		t.Fatalf("drive view should not be denied")
	}
	if got := names(listing.Items); !reflect.DeepEqual(got, []string{`C:\`, `D:\`}) {
		t.Fatalf("unexpected drives %v", got)
	}
	for _, it := range listing.Items {
		if !it.Dir || !it.Drive {
			t.Fatalf("drive item should be a directory drive: %+v", it)
		}
	}
	if n.Breadcrumb() != DrivesLabel {
		t.Fatalf("expected %q, got %q", DrivesLabel, n.Breadcrumb())
	}
}

func TestLoadDirectory(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "beta", "Alpha", "gamma")
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		name      string
		showFiles bool
		want      []string
	}{
		{"dirs_only", false, []string{"Alpha", "beta", "gamma"}},
		{"with_files", true, []string{"Alpha", "beta", "gamma", "notes.txt"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := newTestNavigator(tc.showFiles, nil)
			listing := n.Load(root)
			if listing.Denied {
				t.Fatalf("unexpected denied listing: %v", listing.Err)
			}
			if got := names(listing.Items); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if n.Breadcrumb() != root {
				t.Fatalf("breadcrumb %q, want %q", n.Breadcrumb(), root)
			}
		})
	}
}

func TestLoadMissingIsDenied(t *testing.T) {
	n := newTestNavigator(false, nil)
	listing := n.Load(filepath.Join(t.TempDir(), "missing"))
	if !listing.Denied || listing.Err == nil {
		t.Fatalf("expected denied listing with error, got %+v", listing)
	}
	if len(listing.Items) != 0 {
		t.Fatalf("denied listing should be empty")
	}
	if n.Breadcrumb() != DeniedLabel {
		t.Fatalf("expected %q, got %q", DeniedLabel, n.Breadcrumb())
	}
}

func TestNavigateHistory(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b")
	a := filepath.Join(root, "a")
	b := filepath.Join(a, "b")
	missing := filepath.Join(root, "missing")

	n := newTestNavigator(false, nil)
	n.Load("")

	// The drive view is not a directory, so nothing is pushed.
	n.NavigateTo(root)
	if len(n.History()) != 0 {
		t.Fatalf("drive view should not be pushed, history %v", n.History())
	}

	n.NavigateTo(a)
	n.NavigateTo(b)
	if got := n.History(); !reflect.DeepEqual(got, []string{root, a}) {
		t.Fatalf("history %v", got)
	}

	n.NavigateTo(missing)
	if !n.Denied() {
		t.Fatalf("expected denied location")
	}
	// A denied location is never pushed.
	n.NavigateTo(a)
	if got := n.History(); !reflect.DeepEqual(got, []string{root, a, b}) {
		t.Fatalf("history after denied %v", got)
	}

	prev, err := n.Previous()
	if err != nil || prev != b {
		t.Fatalf("Previous = %q, %v", prev, err)
	}

	n.Back()
	if n.Current() != b {
		t.Fatalf("Back should open %q, got %q", b, n.Current())
	}
	n.Back()
	n.Back()
	if n.Current() != root {
		t.Fatalf("expected root, got %q", n.Current())
	}
	listing := n.Back()
	if n.Current() != "" || n.Breadcrumb() != DrivesLabel {
		t.Fatalf("empty history should return to drives, at %q", n.Current())
	}
	if len(listing.Items) != 2 {
		t.Fatalf("expected drive listing, got %+v", listing)
	}
	if _, err := n.Previous(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "one")
	n := newTestNavigator(false, nil)
	if got := len(n.Load(root).Items); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
	mkdirs(t, root, "two")
	if got := names(n.Refresh().Items); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("refresh got %v", got)
	}
}

func TestNilNavigator(t *testing.T) {
	var n *Navigator
	if n.Current() != "" || n.Breadcrumb() != DrivesLabel || n.Denied() {
		t.Fatalf("nil navigator should report the drive view")
	}
	if l := n.NavigateTo("/"); len(l.Items) != 0 {
		t.Fatalf("nil navigator should list nothing")
	}
}
