package component

import "math"

// Camera is a yaw-only first-person camera standing on the ground plane.
// Yaw is in radians and is never normalized.
type Camera struct {
	X   float64
	Z   float64
	Yaw float64
}

var CameraComponent = NewComponent[Camera]()

// Forward returns the unit heading on the ground plane.
func (c *Camera) Forward() (float64, float64) {
	return math.Sin(c.Yaw), math.Cos(c.Yaw)
}

// Right returns the unit strafe direction, perpendicular to Forward.
func (c *Camera) Right() (float64, float64) {
	return math.Cos(c.Yaw), -math.Sin(c.Yaw)
}

func (c *Camera) MoveForward(d float64) {
	fx, fz := c.Forward()
	c.X += fx * d
	c.Z += fz * d
}

func (c *Camera) MoveBackward(d float64) {
	c.MoveForward(-d)
}

func (c *Camera) StrafeRight(d float64) {
	rx, rz := c.Right()
	c.X += rx * d
	c.Z += rz * d
}

func (c *Camera) StrafeLeft(d float64) {
	c.StrafeRight(-d)
}

func (c *Camera) TurnLeft(a float64) {
	c.Yaw -= a
}

func (c *Camera) TurnRight(a float64) {
	c.Yaw += a
}
