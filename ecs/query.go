package ecs

import "github.com/milk9111/skyline/ecs/component"

// Query returns the live entities that carry every listed component.
// Order follows the storage of the smallest set and is not stable across removals.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	acc := w.store(ids[0], false).Entities()
	for _, id := range ids[1:] {
		next := w.store(id, false)
		if next == nil {
			return nil
		}
		filtered := acc[:0:0]
		for _, eid := range acc {
			if next.Has(eid) {
				filtered = append(filtered, eid)
			}
		}
		acc = filtered
	}
	out := make([]Entity, 0, len(acc))
	for _, eid := range acc {
		if e := w.entities.handle(eid); e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
