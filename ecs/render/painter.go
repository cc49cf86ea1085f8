package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minFontSize keeps far-away labels from collapsing to zero-sized glyph runs.
const minFontSize = 1.0

// Painter replays frame commands onto an ebiten image.
type Painter struct {
	source *text.GoTextFaceSource
}

// NewPainter loads the label face. A painter without a face still draws rectangles.
func NewPainter() (*Painter, error) {
	src, err := LabelFaceSource()
	if err != nil {
		return &Painter{}, err
	}
	return &Painter{source: src}, nil
}

// Paint draws cmds onto screen in order.
func (p *Painter) Paint(screen *ebiten.Image, cmds []Command) {
	if p == nil || screen == nil {
		return
	}
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case Clear:
			screen.Fill(orTransparent(c.Color))
		case FillRect:
			x, y := float32(c.Rect.X), float32(c.Rect.Y)
			w, h := float32(c.Rect.Width), float32(c.Rect.Height)
			vector.FillRect(screen, x, y, w, h, orTransparent(c.Fill), false)
			if c.Outline != nil && c.OutlineWidth > 0 {
				vector.StrokeRect(screen, x, y, w, h, float32(c.OutlineWidth), c.Outline, false)
			}
		case Text:
			p.drawText(screen, c)
		}
	}
}

func (p *Painter) drawText(screen *ebiten.Image, c Text) {
	if p.source == nil || c.Text == "" {
		return
	}
	size := c.FontSize
	if size < minFontSize {
		size = minFontSize
	}
	face := &text.GoTextFace{Source: p.source, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(c.X, c.Y)
	op.ColorScale.ScaleWithColor(orTransparent(c.Color))
	text.Draw(screen, c.Text, face, op)
}

func orTransparent(c color.Color) color.Color {
	if c == nil {
		return color.Transparent
	}
	return c
}
