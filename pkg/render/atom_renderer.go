package render

import (
	"fmt"
	"image"
	"image/color"

	"go-atom-model/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD — строки отладочной панели
type HUD struct {
	Rotation float64
	Width    int
	Height   int
	TPS      float64
	Frames   uint64
}

// AtomRenderer рисует кадр сцены средствами ebiten.
// Буфера глубины нет, поэтому порядок такой: дальняя половина орбит,
// ядро с отсечением задних граней, ближняя половина орбит.
type AtomRenderer struct {
	colors   Colors
	whiteImg *ebiten.Image
	fillImg  *ebiten.Image
	fontFace font.Face

	fillVs  []ebiten.Vertex
	fillIs  []uint16
	visible []bool
	back    []projectedSegment
	front   []projectedSegment
}

type projectedSegment struct {
	x0, y0, x1, y1 float32
	clr            color.RGBA
}

func NewAtomRenderer(colors Colors) *AtomRenderer {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)

	return &AtomRenderer{
		colors:   colors,
		whiteImg: whiteImg,
		// Центральный пиксель: края подизображения не попадают в выборку
		fillImg:  whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		fontFace: basicfont.Face7x13,
	}
}

// Draw очищает экран и рисует кадр
func (r *AtomRenderer) Draw(screen *ebiten.Image, f scene.Frame) {
	screen.Fill(r.colors.Background)

	r.splitSegments(f)
	r.drawSegments(screen, r.back, float32(f.LineWidth))
	r.drawNucleus(screen, f)
	r.drawSegments(screen, r.front, float32(f.LineWidth))
}

// splitSegments делит отрезки орбит по глубине относительно центра ядра
func (r *AtomRenderer) splitSegments(f scene.Frame) {
	r.back = r.back[:0]
	r.front = r.front[:0]
	centerZ := f.NucleusCenter().Z()

	for _, seg := range f.Segments() {
		x0, y0, _, ok0 := f.Viewport.Project(seg.A)
		x1, y1, _, ok1 := f.Viewport.Project(seg.B)
		if !ok0 || !ok1 {
			continue
		}
		ps := projectedSegment{
			x0: float32(x0), y0: float32(y0),
			x1: float32(x1), y1: float32(y1),
			clr: seg.Color.RGBA(),
		}
		midZ := (seg.A.Z() + seg.B.Z()) / 2
		if midZ < centerZ {
			r.back = append(r.back, ps)
		} else {
			r.front = append(r.front, ps)
		}
	}
}

func (r *AtomRenderer) drawSegments(screen *ebiten.Image, segs []projectedSegment, width float32) {
	for _, s := range segs {
		vector.StrokeLine(screen, s.x0, s.y0, s.x1, s.y1, width, s.clr, true)
	}
}

func (r *AtomRenderer) drawNucleus(screen *ebiten.Image, f scene.Frame) {
	r.fillVs = r.fillVs[:0]
	r.fillIs = r.fillIs[:0]
	if cap(r.visible) < len(f.Nucleus) {
		r.visible = make([]bool, len(f.Nucleus))
	}
	r.visible = r.visible[:len(f.Nucleus)]

	for i, v := range f.Nucleus {
		x, y, _, ok := f.Viewport.Project(v.Pos)
		r.visible[i] = ok
		vx := ebiten.Vertex{
			DstX: float32(x),
			DstY: float32(y),
			SrcX: 1,
			SrcY: 1,
		}
		SetVertexColor(&vx, v.Color)
		r.fillVs = append(r.fillVs, vx)
	}

	for tri := 0; tri < len(f.Indices)/3; tri++ {
		a, b, c := f.Indices[tri*3], f.Indices[tri*3+1], f.Indices[tri*3+2]
		if !r.visible[a] || !r.visible[b] || !r.visible[c] {
			continue
		}
		if !f.FrontFacing(tri) {
			continue
		}
		r.fillIs = append(r.fillIs, a, b, c)
	}

	if len(r.fillIs) == 0 {
		return
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawHUD выводит отладочную информацию в левом верхнем углу
func (r *AtomRenderer) DrawHUD(screen *ebiten.Image, hud HUD) {
	lines := []string{
		fmt.Sprintf("rotation: %6.1f deg", hud.Rotation),
		fmt.Sprintf("window:   %dx%d", hud.Width, hud.Height),
		fmt.Sprintf("tps:      %.0f", hud.TPS),
		fmt.Sprintf("frames:   %d", hud.Frames),
	}
	shadow := DarkenColor(r.colors.HUDText)
	for i, line := range lines {
		y := 16 + i*16
		text.Draw(screen, line, r.fontFace, 9, y+1, shadow)
		text.Draw(screen, line, r.fontFace, 8, y, r.colors.HUDText)
	}
}
