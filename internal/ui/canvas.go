// internal/ui/canvas.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-atom-model/internal/scene"

	"github.com/charmbracelet/lipgloss"
)

// Градиент яркости для граней ядра, от тёмного к светлому
const shadeRamp = ".:-=+*#%@"

const orbitGlyph = 'o'

// Линия чуть выигрывает у поверхности на той же глубине
const lineDepthBias = 1e-4

type cell struct {
	ch    rune
	clr   color.RGBA
	depth float64
}

// Canvas — символьная сетка с буфером глубины.
// Меньшая глубина ближе к камере.
type Canvas struct {
	cols, rows int
	aspect     float64
	cells      []cell

	styles map[color.RGBA]lipgloss.Style
}

// NewCanvas создаёт сетку cols x rows; aspect — отношение высоты символа к ширине
func NewCanvas(cols, rows int, aspect float64) *Canvas {
	c := &Canvas{aspect: aspect, styles: make(map[color.RGBA]lipgloss.Style)}
	c.Resize(cols, rows)
	return c
}

// Resize меняет размер сетки и очищает её
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	if cap(c.cells) < cols*rows {
		c.cells = make([]cell, cols*rows)
	}
	c.cells = c.cells[:cols*rows]
	c.Clear()
}

func (c *Canvas) Size() (int, int) { return c.cols, c.rows }

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', depth: math.Inf(1)}
	}
}

// At возвращает символ клетки; ' ' для пустых и вне сетки
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return ' '
	}
	return c.cells[y*c.cols+x].ch
}

// Plot пишет символ, если он ближе уже записанного
func (c *Canvas) Plot(x, y int, depth float64, ch rune, clr color.RGBA) bool {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return false
	}
	i := y*c.cols + x
	if depth >= c.cells[i].depth {
		return false
	}
	c.cells[i] = cell{ch: ch, clr: clr, depth: depth}
	return true
}

// point — проекция в координатах сетки: x в колонках, y в строках
type point struct {
	x, y, depth float64
	ok          bool
}

func (c *Canvas) project(vp scene.Viewport, p scene.Vertex) point {
	x, y, depth, ok := vp.Project(p.Pos)
	return point{x: x, y: y / c.aspect, depth: depth, ok: ok}
}

// Line растеризует отрезок с линейной интерполяцией глубины
func (c *Canvas) Line(a, b point, ch rune, clr color.RGBA) {
	dx, dy := b.x-a.x, b.y-a.y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.Plot(int(math.Floor(a.x)), int(math.Floor(a.y)), a.depth-lineDepthBias, ch, clr)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.x + dx*t
		y := a.y + dy*t
		d := a.depth + (b.depth-a.depth)*t
		c.Plot(int(math.Floor(x)), int(math.Floor(y)), d-lineDepthBias, ch, clr)
	}
}

func edge(a, b point, x, y float64) float64 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

// Triangle заполняет клетки, центры которых попадают в треугольник.
// Цвет и символ берутся по яркости интерполированного цвета вершин.
func (c *Canvas) Triangle(p0, p1, p2 point, c0, c1, c2 scene.Color) {
	area := edge(p0, p1, p2.x, p2.y)
	if area == 0 {
		return
	}
	minX := int(math.Max(0, math.Floor(math.Min(p0.x, math.Min(p1.x, p2.x)))))
	maxX := int(math.Min(float64(c.cols-1), math.Ceil(math.Max(p0.x, math.Max(p1.x, p2.x)))))
	minY := int(math.Max(0, math.Floor(math.Min(p0.y, math.Min(p1.y, p2.y)))))
	maxY := int(math.Min(float64(c.rows-1), math.Ceil(math.Max(p0.y, math.Max(p1.y, p2.y)))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(p1, p2, px, py) / area
			w1 := edge(p2, p0, px, py) / area
			w2 := edge(p0, p1, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			depth := w0*p0.depth + w1*p1.depth + w2*p2.depth
			clr := c0.Scale(w0).Add(c1.Scale(w1)).Add(c2.Scale(w2)).Clamp()
			c.Plot(x, y, depth, shadeGlyph(clr.Luminance()), clr.Opaque().RGBA())
		}
	}
}

func shadeGlyph(lum float64) rune {
	i := int(lum * float64(len(shadeRamp)))
	if i < 0 {
		i = 0
	}
	if i >= len(shadeRamp) {
		i = len(shadeRamp) - 1
	}
	return rune(shadeRamp[i])
}

// DrawFrame очищает сетку и рисует кадр: ядро и орбиты через общий буфер глубины
func (c *Canvas) DrawFrame(f scene.Frame) {
	c.Clear()

	pts := make([]point, len(f.Nucleus))
	for i, v := range f.Nucleus {
		pts[i] = c.project(f.Viewport, v)
	}
	for tri := 0; tri < len(f.Indices)/3; tri++ {
		a, b, d := f.Indices[tri*3], f.Indices[tri*3+1], f.Indices[tri*3+2]
		if !pts[a].ok || !pts[b].ok || !pts[d].ok || !f.FrontFacing(tri) {
			continue
		}
		c.Triangle(pts[a], pts[b], pts[d], f.Nucleus[a].Color, f.Nucleus[b].Color, f.Nucleus[d].Color)
	}

	for _, seg := range f.Segments() {
		a := c.project(f.Viewport, scene.Vertex{Pos: seg.A})
		b := c.project(f.Viewport, scene.Vertex{Pos: seg.B})
		if !a.ok || !b.ok {
			continue
		}
		c.Line(a, b, orbitGlyph, seg.Color.Opaque().RGBA())
	}
}

func (c *Canvas) style(clr color.RGBA) lipgloss.Style {
	s, ok := c.styles[clr]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", clr.R, clr.G, clr.B)))
		c.styles[clr] = s
	}
	return s
}

// String — сетка без цветов, построчно
func (c *Canvas) String() string {
	return c.Crop(c.cols, c.rows, false)
}

// Render — сетка, раскрашенная lipgloss
func (c *Canvas) Render() string {
	return c.Crop(c.cols, c.rows, true)
}

// Crop выводит центральную часть сетки не больше cols x rows.
// Нужна, когда терминал меньше минимального размера сетки.
func (c *Canvas) Crop(cols, rows int, colored bool) string {
	cols = min(max(cols, 0), c.cols)
	rows = min(max(rows, 0), c.rows)
	x0 := (c.cols - cols) / 2
	y0 := (c.rows - rows) / 2

	var b strings.Builder
	for y := y0; y < y0+rows; y++ {
		for x := x0; x < x0+cols; x++ {
			cl := c.cells[y*c.cols+x]
			if !colored || cl.ch == ' ' {
				b.WriteRune(cl.ch)
				continue
			}
			b.WriteString(c.style(cl.clr).Render(string(cl.ch)))
		}
		if y < y0+rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
