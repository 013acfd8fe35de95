// Package palette expands a style pack's base colours into Tailwind-style
// shade scales usable with lipgloss.
package palette

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const shadeCount = 10

// Shade indexes a scale from lightest (50) to darkest (900), matching
// Tailwind's numbering.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Lightness targets per shade. Shade500 reproduces the base colour's own
// lightness band in most palettes.
var shadeLightness = [shadeCount]float64{
	0.97, 0.93, 0.86, 0.76, 0.64, 0.52, 0.42, 0.33, 0.25, 0.17,
}

// Shades is a derived colour scale.
type Shades struct {
	colors [shadeCount]lipgloss.Color
}

// Color returns the colour at the given shade, or "" when out of range.
func (s Shades) Color(shade Shade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= shadeCount {
		return ""
	}
	return s.colors[index]
}

// Derive builds a shade scale from a hex base colour by holding its hue
// and saturation and stepping lightness across the scale.
func Derive(baseHex string) (Shades, error) {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return Shades{}, fmt.Errorf("palette: %q: %w", baseHex, err)
	}

	h, s, _ := base.Hsl()

	var shades Shades
	for i := 0; i < shadeCount; i++ {
		c := colorful.Hsl(h, s, shadeLightness[i]).Clamped()
		shades.colors[i] = lipgloss.Color(c.Hex())
	}
	return shades, nil
}

// Palette maps semantic slot names (primary, surface, danger, ...) to
// their shade scales.
type Palette map[string]Shades

// FromColors derives a full palette from slot name to hex colour, as
// declared by a pack manifest.
func FromColors(colors map[string]string) (Palette, error) {
	p := make(Palette, len(colors))
	for slot, hex := range colors {
		shades, err := Derive(hex)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot, err)
		}
		p[slot] = shades
	}
	return p, nil
}

// Slots returns the slot names in sorted order.
func (p Palette) Slots() []string {
	slots := make([]string, 0, len(p))
	for slot := range p {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}
