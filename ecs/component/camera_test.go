package component

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraMovement(t *testing.T) {
	cases := []struct {
		name         string
		yaw          float64
		move         func(c *Camera)
		wantX, wantZ float64
	}{
		{"forward_yaw0", 0, func(c *Camera) { c.MoveForward(20) }, 0, 20},
		{"backward_yaw0", 0, func(c *Camera) { c.MoveBackward(20) }, 0, -20},
		{"strafe_right_yaw0", 0, func(c *Camera) { c.StrafeRight(20) }, 20, 0},
		{"strafe_left_yaw0", 0, func(c *Camera) { c.StrafeLeft(20) }, -20, 0},
		{"forward_quarter_turn", math.Pi / 2, func(c *Camera) { c.MoveForward(10) }, 10, 0},
		{"strafe_right_quarter_turn", math.Pi / 2, func(c *Camera) { c.StrafeRight(10) }, 0, -10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := &Camera{Yaw: c.yaw}
			c.move(cam)
			if !near(cam.X, c.wantX) || !near(cam.Z, c.wantZ) {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantZ, cam.X, cam.Z)
			}
			if cam.Yaw != c.yaw {
				t.Fatalf("movement must not change yaw")
			}
		})
	}
}

func TestCameraTurnIsUnbounded(t *testing.T) {
	cam := &Camera{}
	for i := 0; i < 200; i++ {
		cam.TurnRight(0.05)
	}
	if !near(cam.Yaw, 10) {
		t.Fatalf("expected yaw 10 after 200 right turns, got %v", cam.Yaw)
	}
	cam.TurnLeft(0.05)
	if !near(cam.Yaw, 9.95) {
		t.Fatalf("expected yaw 9.95, got %v", cam.Yaw)
	}
	if cam.X != 0 || cam.Z != 0 {
		t.Fatalf("turning must not move the camera")
	}
}

func TestCameraForwardAndRightArePerpendicular(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, -2.1, 7.5} {
		cam := &Camera{Yaw: yaw}
		fx, fz := cam.Forward()
		rx, rz := cam.Right()
		if !near(fx*rx+fz*rz, 0) {
			t.Fatalf("yaw %v: forward and right not perpendicular", yaw)
		}
	}
}

func TestTowerKindString(t *testing.T) {
	if TowerDirectory.String() != "directory" || TowerAccessDenied.String() != "access_denied" || TowerFile.String() != "file" {
		t.Fatalf("unexpected kind names")
	}
	if TowerKind(42).String() != "unknown" {
		t.Fatalf("expected unknown for out of range kind")
	}
}
