package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette is a PaletteSpec with every colour resolved.
type Palette struct {
	Background    color.RGBA
	Directory     color.RGBA
	File          color.RGBA
	AccessDenied  color.RGBA
	Selected      color.RGBA
	Label         color.RGBA
	SelectedLabel color.RGBA
	Outline       color.RGBA
	OutlineWidth  float64
}

// Resolve parses every colour of the spec.
func (p PaletteSpec) Resolve() (Palette, error) {
	out := Palette{OutlineWidth: p.OutlineWidth}
	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", p.Background, &out.Background},
		{"directory", p.Directory, &out.Directory},
		{"file", p.File, &out.File},
		{"access_denied", p.AccessDenied, &out.AccessDenied},
		{"selected", p.Selected, &out.Selected},
		{"label", p.Label, &out.Label},
		{"selected_label", p.SelectedLabel, &out.SelectedLabel},
		{"outline", p.Outline, &out.Outline},
	}
	for _, f := range fields {
		c, err := ParseColor(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: palette.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// ParseColor accepts an SVG colour name ("cyan") or #rgb, #rrggbb, #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty colour")
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
