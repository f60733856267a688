package scene

import (
	"go-atom-model/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// Нормаль, которая остаётся текущей после отрисовки сферы (нижний полюс).
// Линии орбит освещаются именно с ней.
var lineNormal = mgl64.Vec3{0, 0, -1}

// Vertex — вершина в координатах глаза с уже посчитанным освещением
type Vertex struct {
	Pos   mgl64.Vec3
	Color Color
}

// Loop — замкнутый контур орбиты в координатах глаза
type Loop struct {
	Spread float64
	Tilt   float64
	Color  Color
	Points []mgl64.Vec3
}

// Frame — вся геометрия одного кадра, готовая к проекции
type Frame struct {
	Viewport  Viewport
	Rotation  float64
	ModelView mgl64.Mat4

	Nucleus []Vertex
	Indices []uint16
	Orbits  []Loop

	LineWidth float64
}

// Scene хранит неизменяемые параметры атома
type Scene struct {
	Light        Light
	Sphere       *Mesh
	NucleusColor Color
	OrbitColor   Color
	OrbitRadius  float64
	NumOrbits    int
	TiltAngles   []float64
	LineWidth    float64
	Blending     bool
}

// NewScene собирает сцену из конфигурации
func NewScene() *Scene {
	return &Scene{
		Light:        DefaultLight(),
		Sphere:       NewSphere(config.NucleusRadius, config.NucleusSlices, config.NucleusStacks),
		NucleusColor: ColorFromArray(config.NucleusColor),
		OrbitColor:   ColorFromArray(config.OrbitColor),
		OrbitRadius:  config.OrbitRadius,
		NumOrbits:    config.NumOrbits,
		TiltAngles:   append([]float64(nil), config.TiltAngles...),
		LineWidth:    config.OrbitLineWidth,
		Blending:     config.BlendingEnabled,
	}
}

func (s *Scene) materialColor(c Color) Color {
	if s.Blending {
		return c
	}
	return c.Opaque()
}

// normalMatrix — обратная транспонированная к верхнему блоку 3x3
func normalMatrix(m mgl64.Mat4) mgl64.Mat3 {
	return m.Mat3().Inv().Transpose()
}

func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// Build собирает кадр для заданного viewport и накопленного поворота
func (s *Scene) Build(vp Viewport, rotation float64) Frame {
	mv := vp.ModelView(rotation)
	f := Frame{
		Viewport:  vp,
		Rotation:  rotation,
		ModelView: mv,
		Indices:   s.Sphere.Indices,
		LineWidth: s.LineWidth,
	}

	nucleusColor := s.materialColor(s.NucleusColor)
	nm := normalMatrix(mv)
	f.Nucleus = make([]Vertex, len(s.Sphere.Positions))
	for i, p := range s.Sphere.Positions {
		n := nm.Mul3x1(s.Sphere.Normals[i])
		f.Nucleus[i] = Vertex{
			Pos:   transformPoint(mv, p),
			Color: s.Light.Shade(n, nucleusColor),
		}
	}

	orbitColor := s.materialColor(s.OrbitColor)
	for _, tilt := range s.TiltAngles {
		for _, o := range Orbits(s.OrbitRadius, s.NumOrbits, tilt) {
			m := mv.Mul4(o.Frame)
			loop := Loop{
				Spread: o.Spread,
				Tilt:   o.Tilt,
				Color:  s.Light.Shade(normalMatrix(m).Mul3x1(lineNormal), orbitColor),
				Points: make([]mgl64.Vec3, len(o.Points)),
			}
			for j, p := range o.Points {
				loop.Points[j] = transformPoint(m, p)
			}
			f.Orbits = append(f.Orbits, loop)
		}
	}
	return f
}

// Segment — отрезок контура с концами в координатах глаза
type Segment struct {
	A, B  mgl64.Vec3
	Color Color
}

// Segments раскладывает контуры на отрезки, включая замыкающий
func (f Frame) Segments() []Segment {
	var segs []Segment
	for _, loop := range f.Orbits {
		n := len(loop.Points)
		for j := 0; j < n; j++ {
			segs = append(segs, Segment{A: loop.Points[j], B: loop.Points[(j+1)%n], Color: loop.Color})
		}
	}
	return segs
}

// NucleusCenter — центр ядра в координатах глаза
func (f Frame) NucleusCenter() mgl64.Vec3 {
	return transformPoint(f.ModelView, mgl64.Vec3{})
}

// FrontFacing сообщает, смотрит ли треугольник ядра на камеру
func (f Frame) FrontFacing(tri int) bool {
	a := f.Nucleus[f.Indices[tri*3]].Pos
	b := f.Nucleus[f.Indices[tri*3+1]].Pos
	c := f.Nucleus[f.Indices[tri*3+2]].Pos
	n := b.Sub(a).Cross(c.Sub(a))
	// Камера в начале координат глаза
	return n.Dot(a) < 0
}
