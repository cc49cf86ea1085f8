package entity

import (
	"fmt"
	"math"
	"sort"

	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
)

// AccessDeniedLabel is shown on the marker tower of an unreadable location.
const AccessDeniedLabel = "Access Denied"

// TowerEntry is one item of the current location, before it gets a position.
type TowerEntry struct {
	Label string
	Kind  component.TowerKind
	Path  string
}

// DeniedEntry is the lone entry shown for a location that could not be read.
func DeniedEntry() TowerEntry {
	return TowerEntry{Label: AccessDeniedLabel, Kind: component.TowerAccessDenied}
}

// Layout spaces towers along the X axis at Z=0.
type Layout struct {
	Spacing   float64
	BaseWidth float64
}

// Step is the distance between neighbouring tower centers. It never drops
// below the tower width so neighbours cannot overlap.
func (l Layout) Step() float64 {
	return math.Max(l.Spacing, l.BaseWidth)
}

// PositionX returns the X of tower i out of n, centred on the origin.
func (l Layout) PositionX(i, n int) float64 {
	step := l.Step()
	start := -float64(n-1) * step / 2
	return start + float64(i)*step
}

// PopulateTowers replaces every tower in w with one tower per entry, in order.
// The previous selection is dropped with the old towers.
func PopulateTowers(w *ecs.World, entries []TowerEntry, layout Layout) ([]ecs.Entity, error) {
	ClearTowers(w)

	out := make([]ecs.Entity, 0, len(entries))
	for i, entry := range entries {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TowerComponent.Kind(), &component.Tower{
			Label: entry.Label,
			Kind:  entry.Kind,
			Path:  entry.Path,
			Order: i,
		}); err != nil {
			return out, fmt.Errorf("tower: add tower %q: %w", entry.Label, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X: layout.PositionX(i, len(entries)),
			Z: 0,
		}); err != nil {
			return out, fmt.Errorf("tower: add transform %q: %w", entry.Label, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// ClearTowers destroys every tower entity.
func ClearTowers(w *ecs.World) {
	for _, e := range Query(w) {
		ecs.DestroyEntity(w, e)
	}
}

// Towers returns the tower entities in registry order.
func Towers(w *ecs.World) []ecs.Entity {
	ents := Query(w)
	sort.SliceStable(ents, func(i, j int) bool {
		return towerOrder(w, ents[i]) < towerOrder(w, ents[j])
	})
	return ents
}

// Query returns tower entities that have a position, in no particular order.
func Query(w *ecs.World) []ecs.Entity {
	return ecs.Query(w, component.TowerComponent.Kind().ID(), component.TransformComponent.Kind().ID())
}

func towerOrder(w *ecs.World, e ecs.Entity) int {
	t, ok := ecs.Get(w, e, component.TowerComponent.Kind())
	if !ok {
		return math.MaxInt
	}
	return t.Order
}

// SelectedTower returns the tower carrying the Selected tag, if any.
func SelectedTower(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.SelectedComponent.Kind())
}

// Select tags e as selected. Callers clear any previous selection first.
func Select(w *ecs.World, e ecs.Entity) error {
	if err := ecs.Add(w, e, component.SelectedComponent.Kind(), &component.Selected{}); err != nil {
		return fmt.Errorf("tower: select %v: %w", e, err)
	}
	return nil
}

// ClearSelection drops the Selected tag from every tower and returns who had it.
func ClearSelection(w *ecs.World) (ecs.Entity, bool) {
	prev, had := SelectedTower(w)
	var tagged []ecs.Entity
	ecs.ForEach(w, component.SelectedComponent.Kind(), func(e ecs.Entity, _ *component.Selected) {
		tagged = append(tagged, e)
	})
	for _, e := range tagged {
		ecs.Remove(w, e, component.SelectedComponent.Kind())
	}
	return prev, had
}
