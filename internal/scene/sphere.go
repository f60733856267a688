package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh — треугольная сетка с нормалями в вершинах
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	Indices   []uint16
}

// NewSphere тесселирует сферу с центром в начале координат. Полюса лежат на
// оси Z, slices делят её по долготе, stacks — по широте. Треугольники
// ориентированы против часовой стрелки при взгляде снаружи.
func NewSphere(radius float64, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	m := &Mesh{
		Positions: make([]mgl64.Vec3, 0, (slices+1)*(stacks+1)),
		Normals:   make([]mgl64.Vec3, 0, (slices+1)*(stacks+1)),
		Indices:   make([]uint16, 0, slices*stacks*6),
	}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)
			n := mgl64.Vec3{sinPhi * cosTheta, sinPhi * sinTheta, cosPhi}
			m.Normals = append(m.Normals, n)
			m.Positions = append(m.Positions, n.Mul(radius))
		}
	}

	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i*row + j)
			b := uint16((i+1)*row + j)
			c := uint16((i+1)*row + j + 1)
			d := uint16(i*row + j + 1)
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

// TriangleCount возвращает число треугольников сетки
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
