package entity

import (
	"fmt"

	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
)

// NewCamera creates the scene camera at the given pose.
func NewCamera(w *ecs.World, start component.Camera) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &start); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
