package system

import (
	"github.com/milk9111/skyline/common"
	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
	"github.com/milk9111/skyline/ecs/entity"
)

// EventSelection is the event type pushed whenever the selected tower changes.
const EventSelection = "selection"

// SelectionChange describes one tower gaining or losing the selection.
type SelectionChange struct {
	Entity   ecs.Entity
	Tower    component.Tower
	Selected bool
}

// PickingSystem resolves screen points to towers and drives the selection.
type PickingSystem struct {
	Projector *Projector
}

func NewPickingSystem(p *Projector) *PickingSystem {
	return &PickingSystem{Projector: p}
}

// Pick returns the earliest registered tower whose footprint contains (x, y).
// Towers that do not project are skipped.
func (ps *PickingSystem) Pick(w *ecs.World, vp common.Viewport, x, y float64) (ecs.Entity, bool) {
	if ps == nil || ps.Projector == nil || w == nil {
		return 0, false
	}
	cam := CurrentCamera(w)
	for _, e := range entity.Towers(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		rect, _, ok := ps.Projector.ProjectTower(cam, vp, *t)
		if !ok {
			continue
		}
		if rect.Contains(x, y) {
			return e, true
		}
	}
	return 0, false
}

// Press clears the previous selection and selects whatever lies under the pointer.
// It reports whether the selected tower changed.
func (ps *PickingSystem) Press(w *ecs.World, vp common.Viewport, x, y float64) bool {
	if ps == nil || w == nil {
		return false
	}
	prev, hadPrev := entity.ClearSelection(w)
	hit, ok := ps.Pick(w, vp, x, y)
	if ok {
		if err := entity.Select(w, hit); err != nil {
			ok = false
		}
	}

	if hadPrev && ok && prev == hit {
		return false
	}
	if hadPrev {
		pushSelection(w, prev, false)
	}
	if ok {
		pushSelection(w, hit, true)
	}
	return hadPrev || ok
}

// Release clears the selection when the pointer comes up over empty space.
// Releasing over any tower leaves the selection from Press untouched.
func (ps *PickingSystem) Release(w *ecs.World, vp common.Viewport, x, y float64) bool {
	if ps == nil || w == nil {
		return false
	}
	if _, ok := ps.Pick(w, vp, x, y); ok {
		return false
	}
	prev, had := entity.ClearSelection(w)
	if had {
		pushSelection(w, prev, false)
	}
	return had
}

func pushSelection(w *ecs.World, e ecs.Entity, selected bool) {
	change := SelectionChange{Entity: e, Selected: selected}
	if t, ok := ecs.Get(w, e, component.TowerComponent.Kind()); ok {
		change.Tower = *t
	}
	w.Events().Push(ecs.Event{Type: EventSelection, Data: change})
}
