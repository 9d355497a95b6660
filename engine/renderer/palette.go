package renderer

import (
	"math"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// lerp blends c toward d by t.
func (c Color) lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// scale multiplies the color channels by k, leaving alpha alone.
func (c Color) scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// DefaultPalette is one background color per default major group.
func DefaultPalette() []Color {
	return []Color{
		{R: 0.06, G: 0.09, B: 0.16, A: 1},
		{R: 0.12, G: 0.07, B: 0.15, A: 1},
		{R: 0.05, G: 0.12, B: 0.10, A: 1},
		{R: 0.14, G: 0.10, B: 0.05, A: 1},
		{R: 0.10, G: 0.05, B: 0.07, A: 1},
	}
}

// Tint describes what the clear color is derived from for one frame.
type Tint struct {
	// Rotation is the world yaw in radians; the hue follows it around the palette.
	Rotation float32

	// Progress is the normalized scroll offset; the background brightens slightly toward the end.
	Progress float32

	// CardAlpha is the overlay card opacity; a visible card dims the background behind it.
	CardAlpha float32
}

// ClearColor resolves the background for one frame. The palette is treated as evenly spaced around
// the circle so a world turn sweeps smoothly from one group's color to the next.
//
// Parameters:
//   - palette: colors spaced evenly around a full turn (empty uses DefaultPalette)
//   - tint: this frame's inputs
//
// Returns:
//   - Color: the clear color
func ClearColor(palette []Color, tint Tint) Color {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}

	turn := float64(common.WrapAngle(tint.Rotation)) / (2 * math.Pi) * float64(len(palette))
	i := int(math.Floor(turn)) % len(palette)
	j := (i + 1) % len(palette)
	c := palette[i].lerp(palette[j], turn-math.Floor(turn))

	brightness := 1 + 0.25*float64(common.Clamp01(tint.Progress))
	brightness *= 1 - 0.3*float64(common.Clamp01(tint.CardAlpha))
	c = c.scale(brightness)
	c.R = math.Min(c.R, 1)
	c.G = math.Min(c.G, 1)
	c.B = math.Min(c.B, 1)
	return c
}
