package scene

import (
	"image/color"

	"go-atom-model/internal/utils"
)

// Color — RGBA с компонентами в [0, 1], как glColor4f
type Color struct {
	R, G, B, A float64
}

// ColorFromArray собирает цвет из массива конфигурации
func ColorFromArray(c [4]float64) Color {
	return Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Mul перемножает цвета покомпонентно
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Add складывает только RGB; альфа остаётся от c
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Scale умножает RGB на k
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Clamp ограничивает все компоненты отрезком [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: utils.Clamp01(c.R),
		G: utils.Clamp01(c.G),
		B: utils.Clamp01(c.B),
		A: utils.Clamp01(c.A),
	}
}

// Opaque возвращает тот же цвет с альфой 1
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Luminance — яркость по Rec. 601
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGBA переводит цвет в 8-битный color.RGBA (непредумноженный альфой)
func (c Color) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
