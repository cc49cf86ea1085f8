package system

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/skyline/ecs/component"
)

// Style holds the colours and label metrics of a frame.
type Style struct {
	Background    color.Color
	Directory     color.Color
	File          color.Color
	AccessDenied  color.Color
	Selected      color.Color
	Label         color.Color
	SelectedLabel color.Color
	Outline       color.Color
	OutlineWidth  float64

	// FontSize is the label size at scale 1.
	FontSize float64
	// CharWidth approximates one glyph's advance at scale 1 for centering.
	CharWidth float64
	// BaselineOffset lifts the label above the tower at scale 1.
	BaselineOffset float64
}

// DefaultStyle is black sky, cyan directories, red denied markers and a lime selection.
func DefaultStyle() Style {
	return Style{
		Background:     colornames.Black,
		Directory:      colornames.Cyan,
		File:           colornames.Gray,
		AccessDenied:   colornames.Red,
		Selected:       colornames.Lime,
		Label:          colornames.White,
		SelectedLabel:  colornames.Yellow,
		Outline:        colornames.White,
		OutlineWidth:   1,
		FontSize:       14,
		CharWidth:      7,
		BaselineOffset: 20,
	}
}

// Fill resolves a tower's colour: selection beats access denied beats kind.
func (s Style) Fill(kind component.TowerKind, selected bool) color.Color {
	if selected {
		return s.Selected
	}
	switch kind {
	case component.TowerAccessDenied:
		return s.AccessDenied
	case component.TowerDirectory:
		return s.Directory
	default:
		return s.File
	}
}

// LabelColor is the label colour for a tower.
func (s Style) LabelColor(selected bool) color.Color {
	if selected {
		return s.SelectedLabel
	}
	return s.Label
}
