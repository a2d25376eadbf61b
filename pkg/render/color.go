// pkg/render/color.go
package render

import "image/color"

// WebColors holds all the color definitions needed to render the lane web.
type WebColors struct {
	BackgroundColor color.RGBA
	LaneColor       color.RGBA
	InnerRingColor  color.RGBA
	OuterRingColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Darkened returns the palette with every stroke color darkened.
func (c WebColors) Darkened() WebColors {
	c.LaneColor = DarkenColor(c.LaneColor)
	c.InnerRingColor = DarkenColor(c.InnerRingColor)
	c.OuterRingColor = DarkenColor(c.OuterRingColor)
	return c
}
