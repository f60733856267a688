package ui

import (
	"image/color"
	"strings"
	"testing"

	"go-atom-model/internal/scene"
)

var white = color.RGBA{255, 255, 255, 255}

func TestPlotDepthTest(t *testing.T) {
	c := NewCanvas(4, 3, 2)

	tests := []struct {
		name  string
		x, y  int
		depth float64
		ch    rune
		want  bool
	}{
		{"empty cell", 1, 1, 0.5, 'a', true},
		{"farther is hidden", 1, 1, 0.7, 'b', false},
		{"equal depth is hidden", 1, 1, 0.5, 'c', false},
		{"closer wins", 1, 1, 0.2, 'd', true},
		{"left of grid", -1, 0, 0.1, 'e', false},
		{"below grid", 0, 3, 0.1, 'f', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Plot(tt.x, tt.y, tt.depth, tt.ch, white); got != tt.want {
				t.Errorf("Plot = %v, want %v", got, tt.want)
			}
		})
	}
	if got := c.At(1, 1); got != 'd' {
		t.Errorf("At(1,1) = %q, want 'd'", got)
	}
}

func TestLineCoversEndpoints(t *testing.T) {
	c := NewCanvas(10, 3, 2)
	c.Line(point{x: 0.5, y: 1.5, depth: 0.5, ok: true}, point{x: 9.5, y: 1.5, depth: 0.5, ok: true}, '*', white)

	row := strings.Split(c.String(), "\n")[1]
	if row != "**********" {
		t.Errorf("row = %q, want full line", row)
	}
	if c.At(0, 0) != ' ' || c.At(0, 2) != ' ' {
		t.Error("line leaked into neighbouring rows")
	}
}

func TestTriangleFill(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	p0 := point{x: 0, y: 0, depth: 0.5, ok: true}
	p1 := point{x: 10, y: 0, depth: 0.5, ok: true}
	p2 := point{x: 0, y: 10, depth: 0.5, ok: true}
	bright := scene.Color{R: 1, G: 1, B: 1, A: 1}
	c.Triangle(p0, p1, p2, bright, bright, bright)

	if got := c.At(1, 1); got != '@' {
		t.Errorf("inside cell = %q, want '@'", got)
	}
	if got := c.At(9, 9); got != ' ' {
		t.Errorf("outside cell = %q, want ' '", got)
	}

	// Обратный порядок вершин закрашивает те же клетки
	r := NewCanvas(10, 10, 1)
	r.Triangle(p0, p2, p1, bright, bright, bright)
	if r.String() != c.String() {
		t.Error("winding changed coverage")
	}
}

func TestShadeGlyph(t *testing.T) {
	tests := []struct {
		lum  float64
		want rune
	}{
		{-1, '.'},
		{0, '.'},
		{0.5, '+'},
		{1, '@'},
		{2, '@'},
	}
	for _, tt := range tests {
		if got := shadeGlyph(tt.lum); got != tt.want {
			t.Errorf("shadeGlyph(%v) = %q, want %q", tt.lum, got, tt.want)
		}
	}
}

func TestDrawFrame(t *testing.T) {
	cols, rows := 80, 24
	f := scene.NewScene().Build(scene.Resize(cols, rows*2), 30)
	c := NewCanvas(cols, rows, 2)
	c.DrawFrame(f)

	out := c.String()
	lines := strings.Split(out, "\n")
	if len(lines) != rows {
		t.Fatalf("got %d rows, want %d", len(lines), rows)
	}
	for i, l := range lines {
		if len([]rune(l)) != cols {
			t.Fatalf("row %d has %d cells, want %d", i, len([]rune(l)), cols)
		}
	}
	if c.At(cols/2, rows/2) == ' ' {
		t.Error("nucleus is missing from the centre")
	}
	if !strings.ContainsRune(out, orbitGlyph) {
		t.Error("no orbit cells drawn")
	}
	if !strings.ContainsAny(out, shadeRamp) {
		t.Error("no nucleus cells drawn")
	}
	if c.At(0, 0) != ' ' || c.At(cols-1, rows-1) != ' ' {
		t.Error("corners should stay empty")
	}
}

func TestResizeClears(t *testing.T) {
	c := NewCanvas(5, 5, 2)
	c.Plot(2, 2, 0.1, 'x', white)
	c.Resize(8, 3)

	if cols, rows := c.Size(); cols != 8 || rows != 3 {
		t.Errorf("size = %dx%d, want 8x3", cols, rows)
	}
	if strings.TrimSpace(c.String()) != "" {
		t.Error("resize kept old cells")
	}
	if !c.Plot(2, 2, 0.9, 'y', white) {
		t.Error("depth buffer not reset")
	}
}

func TestCropKeepsCentre(t *testing.T) {
	c := NewCanvas(6, 4, 1)
	c.Plot(2, 1, 0.5, 'a', white)
	c.Plot(3, 2, 0.5, 'b', white)
	c.Plot(0, 0, 0.5, 'z', white)

	tests := []struct {
		name       string
		cols, rows int
		want       string
	}{
		{"full size", 6, 4, "z     \n  a   \n   b  \n      "},
		{"centre 2x2", 2, 2, "a \n b"},
		{"larger than grid", 10, 10, "z     \n  a   \n   b  \n      "},
		{"empty", 0, 3, "\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Crop(tt.cols, tt.rows, false); got != tt.want {
				t.Errorf("Crop(%d, %d) = %q, want %q", tt.cols, tt.rows, got, tt.want)
			}
		})
	}
}
