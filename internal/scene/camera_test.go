package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestResize(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantH      int
		wantAspect float64
	}{
		{"initial", 800, 600, 600, 800.0 / 600.0},
		{"zero height", 800, 0, 1, 800},
		{"square", 400, 400, 400, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := Resize(tt.w, tt.h)
			if vp.X != 0 || vp.Y != 0 || vp.Width != tt.w || vp.Height != tt.wantH {
				t.Errorf("viewport = (%d,%d,%d,%d), want (0,0,%d,%d)", vp.X, vp.Y, vp.Width, vp.Height, tt.w, tt.wantH)
			}
			if math.Abs(vp.Aspect()-tt.wantAspect) > 1e-12 {
				t.Errorf("aspect = %v, want %v", vp.Aspect(), tt.wantAspect)
			}
			for _, v := range vp.Projection {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("projection has non-finite entry: %v", vp.Projection)
				}
			}
			if !matNear(vp.Projection, Perspective(tt.wantAspect), 1e-12) {
				t.Errorf("projection was not rebuilt for aspect %v", tt.wantAspect)
			}
			if !matNear(vp.View, mgl64.Translate3D(0, 0, -5), 1e-12) {
				t.Errorf("view = %v, want translation by -5", vp.View)
			}
		})
	}
}

func TestResizeIsNotIncremental(t *testing.T) {
	a := Resize(1024, 768)
	_ = Resize(400, 300)
	b := Resize(1024, 768)
	if a.Projection != b.Projection || a.View != b.View {
		t.Error("resize result depends on previous calls")
	}
}

func TestClampWindow(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"too small", 50, 50, 400, 300},
		{"zero", 0, 0, 400, 300},
		{"narrow", 100, 900, 400, 900},
		{"large", 1920, 1080, 1920, 1080},
		{"exact", 400, 300, 400, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ClampWindow(tt.w, tt.h, 400, 300)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ClampWindow(%d,%d) = (%d,%d), want (%d,%d)", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestProjectCenter(t *testing.T) {
	vp := Resize(800, 600)
	x, y, depth, ok := vp.Project(mgl64.Vec3{0, 0, -5})
	if !ok {
		t.Fatal("origin of the scene is not visible")
	}
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("projected = (%v,%v), want (400,300)", x, y)
	}
	if depth <= 0 || depth >= 1 {
		t.Errorf("depth = %v, want inside (0,1)", depth)
	}
}

func TestProjectOrientation(t *testing.T) {
	vp := Resize(800, 600)
	_, yUp, _, _ := vp.Project(mgl64.Vec3{0, 1, -5})
	xRight, _, _, _ := vp.Project(mgl64.Vec3{1, 0, -5})
	if yUp >= 300 {
		t.Errorf("+Y should be above the centre, got y=%v", yUp)
	}
	if xRight <= 400 {
		t.Errorf("+X should be right of the centre, got x=%v", xRight)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	vp := Resize(800, 600)
	if _, _, _, ok := vp.Project(mgl64.Vec3{0, 0, 1}); ok {
		t.Error("point behind the camera should be rejected")
	}
}

func TestModelViewRotation(t *testing.T) {
	vp := Resize(800, 600)
	mv := vp.ModelView(90)
	got := mv.Mul4x1(mgl64.Vec4{0, 1, 0, 1}).Vec3()
	want := mgl64.Vec3{0, 0, -4}
	if !vecNear(got, want, 1e-9) {
		t.Errorf("rotated point = %v, want %v", got, want)
	}
}
