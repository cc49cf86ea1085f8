package system

import (
	"math"
	"testing"

	"github.com/milk9111/skyline/common"
	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
	"github.com/milk9111/skyline/ecs/entity"
)

const eps = 1e-9

var testViewport = common.Viewport{Width: 1600, Height: 900}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func newTestProjector() *Projector {
	return &Projector{FOV: 800, BaseWidth: 100, BaseHeight: 150}
}

// newTestWorld builds a world with a camera at cam and towers laid out 200 apart.
func newTestWorld(t *testing.T, cam component.Camera, labels ...string) (*ecs.World, []ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewCamera(w, cam); err != nil {
		t.Fatalf("camera: %v", err)
	}
	entries := make([]entity.TowerEntry, 0, len(labels))
	for _, l := range labels {
		entries = append(entries, entity.TowerEntry{Label: l, Kind: component.TowerDirectory})
	}
	ents, err := entity.PopulateTowers(w, entries, entity.Layout{Spacing: 200, BaseWidth: 100})
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	return w, ents
}

// addTower places a tower at an arbitrary position, bypassing the layout.
func addTower(t *testing.T, w *ecs.World, label string, order int, x, z float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TowerComponent.Kind(), &component.Tower{Label: label, Kind: component.TowerDirectory, Order: order}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Z: z}); err != nil {
		t.Fatal(err)
	}
	return e
}

func selectionEvents(w *ecs.World) []SelectionChange {
	var out []SelectionChange
	for _, evt := range w.Events().Drain() {
		if evt.Type != EventSelection {
			continue
		}
		if change, ok := evt.Data.(SelectionChange); ok {
			out = append(out, change)
		}
	}
	return out
}
