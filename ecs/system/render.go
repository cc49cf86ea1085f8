package system

import (
	"unicode/utf8"

	"github.com/milk9111/skyline/common"
	"github.com/milk9111/skyline/ecs"
	"github.com/milk9111/skyline/ecs/component"
	"github.com/milk9111/skyline/ecs/entity"
	"github.com/milk9111/skyline/ecs/render"
)

// RenderSystem turns the registry and camera into draw commands. It holds no
// frame state, so two calls on the same world produce the same commands.
type RenderSystem struct {
	Projector *Projector
	Style     Style
}

func NewRenderSystem(p *Projector, style Style) *RenderSystem {
	return &RenderSystem{Projector: p, Style: style}
}

// Draw emits a background clear followed by one rectangle and one label per
// visible tower, in registry order so later towers paint over earlier ones.
func (r *RenderSystem) Draw(w *ecs.World, vp common.Viewport) []render.Command {
	if r == nil {
		return nil
	}
	cmds := []render.Command{render.Clear{Color: r.Style.Background}}
	if r.Projector == nil || w == nil {
		return cmds
	}

	cam := CurrentCamera(w)
	for _, e := range entity.Towers(w) {
		tower, ok := ecs.Get(w, e, component.TowerComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		rect, proj, ok := r.Projector.ProjectTower(cam, vp, *t)
		if !ok {
			continue
		}
		selected := ecs.Has(w, e, component.SelectedComponent.Kind())

		cmds = append(cmds, render.FillRect{
			Rect:         rect,
			Fill:         r.Style.Fill(tower.Kind, selected),
			Outline:      r.Style.Outline,
			OutlineWidth: r.Style.OutlineWidth,
		})
		cmds = append(cmds, r.label(tower.Label, rect, proj.Scale, selected))
	}
	return cmds
}

func (r *RenderSystem) label(text string, rect common.Rect, scale float64, selected bool) render.Text {
	approxWidth := float64(utf8.RuneCountInString(text)) * r.Style.CharWidth * scale
	return render.Text{
		Text:     text,
		X:        rect.CenterX() - approxWidth/2,
		Y:        rect.Y - r.Style.BaselineOffset*scale,
		FontSize: r.Style.FontSize * scale,
		Color:    r.Style.LabelColor(selected),
	}
}
