package component

// Transform places an entity on the ground plane. Y is implicit.
type Transform struct {
	X float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
