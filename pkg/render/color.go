// pkg/render/color.go
package render

import (
	"image/color"

	"go-atom-model/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// Colors holds the colors that are not part of the lit scene.
type Colors struct {
	Background color.RGBA
	HUDText    color.RGBA
}

// SetVertexColor copies a scene color into an ebiten vertex.
func SetVertexColor(v *ebiten.Vertex, c scene.Color) {
	c = c.Clamp()
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = float32(c.A)
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
