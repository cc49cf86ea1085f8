package render

import (
	"image/color"

	"github.com/milk9111/skyline/common"
)

// Command is one step of a frame for the drawing surface to replay in order.
type Command interface {
	command()
}

// Clear fills the whole surface.
type Clear struct {
	Color color.Color
}

// FillRect paints a rectangle with an optional outline.
type FillRect struct {
	Rect         common.Rect
	Fill         color.Color
	Outline      color.Color
	OutlineWidth float64
}

// Text draws a single line whose top-left corner sits at X, Y.
type Text struct {
	Text     string
	X, Y     float64
	FontSize float64
	Color    color.Color
}

func (Clear) command()    {}
func (FillRect) command() {}
func (Text) command()     {}
