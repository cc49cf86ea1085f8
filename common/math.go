package common

// Rect is an axis-aligned screen rectangle with its origin at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside r. Edges count as inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// CenterX returns the horizontal midpoint of r.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// Viewport is the size of the drawing surface in logical pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the middle of the surface.
func (v Viewport) Center() (float64, float64) {
	return v.Width / 2, v.Height / 2
}

// WithFallbackWidth substitutes width when the surface has not been laid out yet.
func (v Viewport) WithFallbackWidth(width float64) Viewport {
	if v.Width <= 0 {
		v.Width = width
	}
	return v
}
