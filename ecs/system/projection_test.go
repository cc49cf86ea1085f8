package system

import (
	"math"
	"testing"

	"github.com/milk9111/skyline/common"
	"github.com/milk9111/skyline/ecs/component"
)

func TestProjectScenario(t *testing.T) {
	p := newTestProjector()
	cam := component.Camera{X: 0, Z: -500, Yaw: 0}

	proj, ok := p.Project(cam, testViewport, 0, 0)
	if !ok {
		t.Fatalf("expected tower in front of camera to be visible")
	}
	if !near(proj.Scale, 1.6) {
		t.Fatalf("expected scale 1.6, got %v", proj.Scale)
	}
	if !near(proj.ScreenX, testViewport.Width/2) {
		t.Fatalf("expected screenX %v, got %v", testViewport.Width/2, proj.ScreenX)
	}

	rect := p.Footprint(proj, testViewport)
	want := common.Rect{X: 720, Y: 450 - 240, Width: 160, Height: 240}
	if !near(rect.X, want.X) || !near(rect.Y, want.Y) || !near(rect.Width, want.Width) || !near(rect.Height, want.Height) {
		t.Fatalf("expected footprint %+v, got %+v", want, rect)
	}
}

func TestProjectVisibilityBoundary(t *testing.T) {
	p := newTestProjector()
	cam := component.Camera{}
	const e = 1e-6

	cases := []struct {
		name    string
		x, z    float64
		visible bool
	}{
		{"at_near_plane", 0, 1, false},
		{"just_past_near_plane", 0, 1 + e, true},
		{"at_camera", 0, 0, false},
		{"behind", 0, -300, false},
		{"beside_on_near_plane", 250, 1, false},
		{"far_ahead", 40, 1000, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			proj, ok := p.Project(cam, testViewport, c.x, c.z)
			if ok != c.visible {
				t.Fatalf("visible = %v, want %v", ok, c.visible)
			}
			if c.name == "just_past_near_plane" && math.Abs(proj.Scale-800/(1+e)) > eps {
				t.Fatalf("expected scale %v, got %v", 800/(1+e), proj.Scale)
			}
		})
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	p := newTestProjector()
	cam := component.Camera{X: 13, Z: -240, Yaw: 0.37}
	first, ok1 := p.Project(cam, testViewport, -120, 80)
	for i := 0; i < 10; i++ {
		again, ok2 := p.Project(cam, testViewport, -120, 80)
		if ok1 != ok2 || first != again {
			t.Fatalf("projection changed between calls: %+v/%v vs %+v/%v", first, ok1, again, ok2)
		}
	}
}

func TestProjectFollowsYaw(t *testing.T) {
	p := newTestProjector()

	// Turned a quarter right, the camera looks down +X.
	cam := component.Camera{Yaw: math.Pi / 2}
	proj, ok := p.Project(cam, testViewport, 500, 0)
	if !ok {
		t.Fatalf("point on +X should be visible after turning right")
	}
	if !near(proj.ScreenX, testViewport.Width/2) || !near(proj.Scale, 1.6) {
		t.Fatalf("expected centred projection at scale 1.6, got %+v", proj)
	}
	if _, ok := p.Project(cam, testViewport, 0, 500); ok {
		t.Fatalf("point on +Z is beside the turned camera and must be absent")
	}

	// Points to the right of the heading land right of center.
	cam = component.Camera{Z: -500}
	proj, ok = p.Project(cam, testViewport, 100, 0)
	if !ok || proj.ScreenX <= testViewport.Width/2 {
		t.Fatalf("expected right-of-center projection, got %+v ok=%v", proj, ok)
	}
}

func TestProjectUsesViewportWidth(t *testing.T) {
	p := newTestProjector()
	cam := component.Camera{Z: -500}
	narrow := common.Viewport{Width: 800, Height: 600}
	proj, ok := p.Project(cam, narrow, 0, 0)
	if !ok || !near(proj.ScreenX, 400) {
		t.Fatalf("expected screenX 400, got %+v ok=%v", proj, ok)
	}
	rect := p.Footprint(proj, narrow)
	if !near(rect.Y+rect.Height, 300) {
		t.Fatalf("tower base should sit on the vertical center, got bottom %v", rect.Y+rect.Height)
	}
}
