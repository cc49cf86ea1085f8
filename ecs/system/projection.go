package system

import (
	"math"

	"github.com/milk9111/skyline/common"
	"github.com/milk9111/skyline/ecs/component"
)

// nearPlane is the camera-space depth at or below which nothing is visible.
const nearPlane = 1.0

// Projection is where a ground-plane point lands on screen and how much it shrinks.
type Projection struct {
	ScreenX float64
	Scale   float64
}

// Projector maps world positions to screen space for a yaw-only camera.
// Screen Y is not projected: towers stand on the vertical center of the viewport.
type Projector struct {
	FOV        float64
	BaseWidth  float64
	BaseHeight float64
}

// Project returns the screen position of (worldX, worldZ), or false when the
// point is behind the camera or too close to it.
func (p Projector) Project(cam component.Camera, vp common.Viewport, worldX, worldZ float64) (Projection, bool) {
	dx := worldX - cam.X
	dz := worldZ - cam.Z

	sin := math.Sin(cam.Yaw)
	cos := math.Cos(cam.Yaw)

	px := dx*cos - dz*sin
	pz := dx*sin + dz*cos
	if pz <= nearPlane {
		return Projection{}, false
	}

	scale := p.FOV / pz
	return Projection{
		ScreenX: vp.Width/2 + px*scale,
		Scale:   scale,
	}, true
}

// Footprint is the screen rectangle of a tower with the given projection.
// Towers grow upward from the viewport's vertical center.
func (p Projector) Footprint(proj Projection, vp common.Viewport) common.Rect {
	w := p.BaseWidth * proj.Scale
	h := p.BaseHeight * proj.Scale
	_, centerY := vp.Center()
	return common.Rect{
		X:      proj.ScreenX - w/2,
		Y:      centerY - h,
		Width:  w,
		Height: h,
	}
}

// ProjectTower combines Project and Footprint for a tower's transform.
func (p Projector) ProjectTower(cam component.Camera, vp common.Viewport, t component.Transform) (common.Rect, Projection, bool) {
	proj, ok := p.Project(cam, vp, t.X, t.Z)
	if !ok {
		return common.Rect{}, Projection{}, false
	}
	return p.Footprint(proj, vp), proj, true
}
