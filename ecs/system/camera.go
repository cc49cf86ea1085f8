package system

import (
	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
)

// CameraSystem applies discrete movement commands to the camera entity.
type CameraSystem struct {
	MoveStep float64
	TurnStep float64

	camEntity ecs.Entity
}

func NewCameraSystem(moveStep, turnStep float64) *CameraSystem {
	return &CameraSystem{MoveStep: moveStep, TurnStep: turnStep}
}

// Apply runs cmd once against the camera. It reports whether the camera changed.
func (cs *CameraSystem) Apply(w *ecs.World, cmd Command) bool {
	if cs == nil || w == nil {
		return false
	}
	cam, ok := cs.camera(w)
	if !ok {
		return false
	}

	switch cmd {
	case CommandMoveForward:
		cam.MoveForward(cs.MoveStep)
	case CommandMoveBackward:
		cam.MoveBackward(cs.MoveStep)
	case CommandStrafeLeft:
		cam.StrafeLeft(cs.MoveStep)
	case CommandStrafeRight:
		cam.StrafeRight(cs.MoveStep)
	case CommandTurnLeft:
		cam.TurnLeft(cs.TurnStep)
	case CommandTurnRight:
		cam.TurnRight(cs.TurnStep)
	default:
		return false
	}
	return true
}

func (cs *CameraSystem) camera(w *ecs.World) (*component.Camera, bool) {
	if !cs.camEntity.Valid() || !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return nil, false
		}
		cs.camEntity = camEntity
	}
	return ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
}

// CurrentCamera returns a copy of the first camera in w, or the zero camera.
func CurrentCamera(w *ecs.World) component.Camera {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return component.Camera{}
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return component.Camera{}
	}
	return *cam
}
