package main

import (
	"github.com/milk9111/skyline/ecs/component"
	"github.com/milk9111/skyline/nav"
	"github.com/milk9111/skyline/scene"
)

// entriesFromListing turns a navigator listing into towers. An unreadable
// location becomes the single Access Denied marker.
func entriesFromListing(l nav.Listing) []scene.Entry {
	if l.Denied {
		return []scene.Entry{scene.DeniedEntry()}
	}
	out := make([]scene.Entry, 0, len(l.Items))
	for _, it := range l.Items {
		kind := component.TowerFile
		if it.Dir {
			kind = component.TowerDirectory
		}
		out = append(out, scene.Entry{Label: it.Name, Kind: kind, Path: it.Path})
	}
	return out
}
