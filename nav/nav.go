// Package nav enumerates drives and directories for the skyline view and keeps
// the back-navigation history.
package nav

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	DrivesLabel = "This PC"
	DeniedLabel = "Access Denied"
)

var ErrNoHistory = errors.New("nav: no history")

// Item is one child of a location.
type Item struct {
	Name  string
	Path  string
	Dir   bool
	Drive bool
}

// Listing is the content of one location. Denied is set when the location
// could not be read; Items is empty then.
type Listing struct {
	Path   string
	Items  []Item
	Denied bool
	Err    error
}

// Filter decides which items of a readable directory become towers.
type Filter interface {
	Keep(Item) (bool, error)
}

type Navigator struct {
	// Drives lists the roots shown for the empty location.
	Drives    func() []string
	ShowFiles bool
	Filter    Filter

	current string
	denied  bool
	history []string
}

func New(showFiles bool, filter Filter) *Navigator {
	return &Navigator{
		Drives:    Drives,
		ShowFiles: showFiles,
		Filter:    filter,
	}
}

// Current is the location last loaded; empty for the drive view.
func (n *Navigator) Current() string {
	if n == nil {
		return ""
	}
	return n.current
}

func (n *Navigator) Denied() bool {
	return n != nil && n.denied
}

// Breadcrumb is the label shown for the current location.
func (n *Navigator) Breadcrumb() string {
	switch {
	case n == nil || (n.current == "" && !n.denied):
		return DrivesLabel
	case n.denied:
		return DeniedLabel
	default:
		return n.current
	}
}

// History returns a copy of the back stack, oldest first.
func (n *Navigator) History() []string {
	if n == nil {
		return nil
	}
	return append([]string(nil), n.history...)
}

// Load replaces the current location without touching history.
func (n *Navigator) Load(path string) Listing {
	if n == nil {
		return Listing{}
	}
	path = strings.TrimSpace(path)
	n.current = path
	if path == "" {
		n.denied = false
		return n.listDrives()
	}

	listing := n.listDir(path)
	n.denied = listing.Denied
	if listing.Err != nil {
		log.Printf("nav: list %s: %v", path, listing.Err)
	}
	return listing
}

// NavigateTo opens path, remembering the current location when it is a
// readable directory.
func (n *Navigator) NavigateTo(path string) Listing {
	if n == nil {
		return Listing{}
	}
	if n.current != "" && !n.denied && isDir(n.current) {
		n.history = append(n.history, n.current)
	}
	return n.Load(path)
}

// Previous reports the location Back would open.
func (n *Navigator) Previous() (string, error) {
	if n == nil || len(n.history) == 0 {
		return "", ErrNoHistory
	}
	return n.history[len(n.history)-1], nil
}

// Back pops the history, or returns to the drive view when it is empty.
func (n *Navigator) Back() Listing {
	if n == nil {
		return Listing{}
	}
	prev, err := n.Previous()
	if err != nil {
		return n.Load("")
	}
	n.history = n.history[:len(n.history)-1]
	return n.Load(prev)
}

// Refresh re-reads the current location.
func (n *Navigator) Refresh() Listing {
	if n == nil {
		return Listing{}
	}
	return n.Load(n.current)
}

func (n *Navigator) listDrives() Listing {
	var roots []string
	if n.Drives != nil {
		roots = n.Drives()
	}
	items := make([]Item, 0, len(roots))
	for _, root := range roots {
		items = append(items, Item{Name: root, Path: root, Dir: true, Drive: true})
	}
	return Listing{Items: items}
}

func (n *Navigator) listDir(path string) Listing {
	entries, err := os.ReadDir(path)
	if err != nil {
		return Listing{Path: path, Denied: true, Err: fmt.Errorf("nav: read %s: %w", path, err)}
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		dir := entry.IsDir()
		if !dir && entry.Type()&os.ModeSymlink != 0 {
			dir = isDir(full)
		}
		if !dir && !n.ShowFiles {
			continue
		}
		item := Item{Name: entry.Name(), Path: full, Dir: dir}
		if n.Filter != nil {
			keep, err := n.Filter.Keep(item)
			if err != nil {
				log.Printf("nav: filter %s: %v", full, err)
			} else if !keep {
				continue
			}
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return Listing{Path: path, Items: items}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
