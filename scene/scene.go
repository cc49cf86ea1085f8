// Package scene owns the skyline world: the camera, the tower registry and
// the selection, and turns input into state changes and state into draw commands.
package scene

import (
	"fmt"

	"github.com/milk9111/skyline/common"
	"github.com/milk9111/skyline/config"
	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
	"github.com/milk9111/skyline/ecs/entity"
	"github.com/milk9111/skyline/ecs/render"
	"github.com/milk9111/skyline/ecs/system"
)

type Command = system.Command

const (
	CommandNone         = system.CommandNone
	CommandMoveForward  = system.CommandMoveForward
	CommandMoveBackward = system.CommandMoveBackward
	CommandStrafeLeft   = system.CommandStrafeLeft
	CommandStrafeRight  = system.CommandStrafeRight
	CommandTurnLeft     = system.CommandTurnLeft
	CommandTurnRight    = system.CommandTurnRight
)

// Entry is one tower to place on the next Populate.
type Entry = entity.TowerEntry

// DeniedEntry is the single marker shown for an unreadable location.
func DeniedEntry() Entry {
	return entity.DeniedEntry()
}

// SelectionEvent reports a tower gaining or losing the selection.
type SelectionEvent struct {
	Label    string
	Kind     component.TowerKind
	Path     string
	Selected bool
}

type Scene struct {
	world  *ecs.World
	camera ecs.Entity

	projector *system.Projector
	cameras   *system.CameraSystem
	picking   *system.PickingSystem
	renderer  *system.RenderSystem

	layout        entity.Layout
	viewport      common.Viewport
	fallbackWidth float64

	dirty bool
}

// New builds an empty scene with the camera at cfg's start pose.
func New(cfg config.Config) (*Scene, error) {
	w := ecs.NewWorld()
	camera, err := entity.NewCamera(w, component.Camera{
		X:   cfg.Camera.X,
		Z:   cfg.Camera.Z,
		Yaw: cfg.Camera.Yaw,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	projector := &system.Projector{}
	s := &Scene{
		world:     w,
		camera:    camera,
		projector: projector,
		cameras:   system.NewCameraSystem(0, 0),
		picking:   system.NewPickingSystem(projector),
		renderer:  system.NewRenderSystem(projector, system.DefaultStyle()),
		dirty:     true,
	}
	if err := s.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyConfig swaps projection, movement, layout and palette settings. The
// camera pose and the registry are kept; new spacing applies on the next Populate.
func (s *Scene) ApplyConfig(cfg config.Config) error {
	if s == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("scene: apply config: %w", err)
	}
	style, err := StyleFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("scene: apply config: %w", err)
	}

	s.projector.FOV = cfg.FOV
	s.projector.BaseWidth = cfg.TowerBaseWidth
	s.projector.BaseHeight = cfg.TowerBaseHeight
	s.cameras.MoveStep = cfg.MoveStep
	s.cameras.TurnStep = cfg.TurnStep
	s.renderer.Style = style
	s.layout = entity.Layout{Spacing: cfg.TowerSpacing, BaseWidth: cfg.TowerBaseWidth}
	s.fallbackWidth = cfg.FallbackViewportWidth
	s.dirty = true
	return nil
}

// StyleFromConfig resolves the palette and label metrics of cfg.
func StyleFromConfig(cfg config.Config) (system.Style, error) {
	p, err := cfg.Palette.Resolve()
	if err != nil {
		return system.Style{}, err
	}
	return system.Style{
		Background:     p.Background,
		Directory:      p.Directory,
		File:           p.File,
		AccessDenied:   p.AccessDenied,
		Selected:       p.Selected,
		Label:          p.Label,
		SelectedLabel:  p.SelectedLabel,
		Outline:        p.Outline,
		OutlineWidth:   p.OutlineWidth,
		FontSize:       cfg.Label.FontSize,
		CharWidth:      cfg.Label.CharWidth,
		BaselineOffset: cfg.Label.BaselineOffset,
	}, nil
}

// SetViewport records the drawing surface size.
func (s *Scene) SetViewport(width, height float64) {
	if s == nil {
		return
	}
	vp := common.Viewport{Width: width, Height: height}
	if vp != s.viewport {
		s.viewport = vp
		s.dirty = true
	}
}

// Viewport is the surface used for projection, with the fallback width applied.
func (s *Scene) Viewport() common.Viewport {
	if s == nil {
		return common.Viewport{}
	}
	return s.viewport.WithFallbackWidth(s.fallbackWidth)
}

// Dispatch applies one movement command. Unknown commands are ignored.
func (s *Scene) Dispatch(cmd Command) bool {
	if s == nil {
		return false
	}
	if !s.cameras.Apply(s.world, cmd) {
		return false
	}
	s.dirty = true
	return true
}

// PointerPressed selects the tower under (x, y), dropping any previous selection.
func (s *Scene) PointerPressed(x, y float64) bool {
	if s == nil {
		return false
	}
	changed := s.picking.Press(s.world, s.Viewport(), x, y)
	if changed {
		s.dirty = true
	}
	return changed
}

// PointerReleased clears the selection when released over empty space.
func (s *Scene) PointerReleased(x, y float64) bool {
	if s == nil {
		return false
	}
	changed := s.picking.Release(s.world, s.Viewport(), x, y)
	if changed {
		s.dirty = true
	}
	return changed
}

// Pick returns the tower under (x, y) without changing the selection.
func (s *Scene) Pick(x, y float64) (component.Tower, bool) {
	if s == nil {
		return component.Tower{}, false
	}
	e, ok := s.picking.Pick(s.world, s.Viewport(), x, y)
	if !ok {
		return component.Tower{}, false
	}
	return s.tower(e)
}

// Populate replaces the registry. The selection and any undelivered selection
// events are dropped silently; the camera keeps its pose.
func (s *Scene) Populate(entries []Entry) error {
	if s == nil {
		return nil
	}
	_, err := entity.PopulateTowers(s.world, entries, s.layout)
	// Pending selection changes name towers that no longer exist.
	s.world.Events().Drain()
	s.dirty = true
	if err != nil {
		return fmt.Errorf("scene: populate: %w", err)
	}
	return nil
}

// Towers returns the registry in order.
func (s *Scene) Towers() []component.Tower {
	if s == nil {
		return nil
	}
	ents := entity.Towers(s.world)
	out := make([]component.Tower, 0, len(ents))
	for _, e := range ents {
		if t, ok := s.tower(e); ok {
			out = append(out, t)
		}
	}
	return out
}

// TowerPosition returns the ground position of the i-th tower in registry order.
func (s *Scene) TowerPosition(i int) (component.Transform, bool) {
	if s == nil {
		return component.Transform{}, false
	}
	ents := entity.Towers(s.world)
	if i < 0 || i >= len(ents) {
		return component.Transform{}, false
	}
	t, ok := ecs.Get(s.world, ents[i], component.TransformComponent.Kind())
	if !ok {
		return component.Transform{}, false
	}
	return *t, true
}

// Selected returns the selected tower, if any.
func (s *Scene) Selected() (component.Tower, bool) {
	if s == nil {
		return component.Tower{}, false
	}
	e, ok := entity.SelectedTower(s.world)
	if !ok {
		return component.Tower{}, false
	}
	return s.tower(e)
}

// Camera returns a copy of the camera pose.
func (s *Scene) Camera() component.Camera {
	if s == nil {
		return component.Camera{}
	}
	cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind())
	if !ok {
		return component.Camera{}
	}
	return *cam
}

// Draw renders the current frame. It does not mutate the scene apart from
// clearing the dirty flag.
func (s *Scene) Draw() []render.Command {
	if s == nil {
		return nil
	}
	s.dirty = false
	return s.renderer.Draw(s.world, s.Viewport())
}

// Dirty reports whether anything visible changed since the last Draw.
func (s *Scene) Dirty() bool {
	return s != nil && s.dirty
}

// Events drains pending selection notifications, oldest first.
func (s *Scene) Events() []SelectionEvent {
	if s == nil {
		return nil
	}
	var out []SelectionEvent
	for _, evt := range s.world.Events().Drain() {
		if evt.Type != system.EventSelection {
			continue
		}
		change, ok := evt.Data.(system.SelectionChange)
		if !ok {
			continue
		}
		out = append(out, SelectionEvent{
			Label:    change.Tower.Label,
			Kind:     change.Tower.Kind,
			Path:     change.Tower.Path,
			Selected: change.Selected,
		})
	}
	return out
}

func (s *Scene) tower(e ecs.Entity) (component.Tower, bool) {
	t, ok := ecs.Get(s.world, e, component.TowerComponent.Kind())
	if !ok {
		return component.Tower{}, false
	}
	return *t, true
}

// ParseCommand maps a config name such as "turn_left" to its command.
func ParseCommand(name string) (Command, bool) {
	return system.ParseCommand(name)
}
