package scene

import (
	"math"

	"go-atom-model/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// Light — единственный источник света сцены.
// Освещение повторяет fixed-function модель с color material
// (AMBIENT_AND_DIFFUSE): цвет вершины играет роль ambient и diffuse материала.
type Light struct {
	Ambient  Color
	Diffuse  Color
	Specular Color
	// Направление на источник в координатах глаза, нормированное
	Direction mgl64.Vec3

	GlobalAmbient    Color
	MaterialSpecular Color
	Shininess        float64
}

// NewLight создаёт источник. Позиция задаётся как в glLightfv: она
// переводится в координаты глаза матрицей view, активной в момент настройки.
// Для w=0 свет направленный и перенос камеры на него не влияет.
func NewLight(ambient, diffuse, specular, position [4]float64, view mgl64.Mat4) Light {
	pos := view.Mul4x1(mgl64.Vec4{position[0], position[1], position[2], position[3]})
	dir := pos.Vec3()
	if position[3] != 0 {
		// Точечный источник здесь не используется: берём направление из начала координат глаза
		dir = pos.Vec3().Mul(1 / pos.W())
	}
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Light{
		Ambient:          ColorFromArray(ambient),
		Diffuse:          ColorFromArray(diffuse),
		Specular:         ColorFromArray(specular),
		Direction:        dir,
		GlobalAmbient:    ColorFromArray(config.GlobalAmbient),
		MaterialSpecular: ColorFromArray(config.MaterialSpecular),
	}
}

// DefaultLight — источник из конфигурации, настроенный при начальной камере
func DefaultLight() Light {
	return NewLight(config.LightAmbient, config.LightDiffuse, config.LightSpecular, config.LightPosition, CameraView())
}

// Shade считает цвет вершины с нормалью n (координаты глаза) и цветом материала c.
// Альфа результата — альфа diffuse материала.
func (l Light) Shade(n mgl64.Vec3, c Color) Color {
	if n.Len() > 0 {
		n = n.Normalize()
	}
	out := l.GlobalAmbient.Mul(c).Add(l.Ambient.Mul(c))

	nDotL := n.Dot(l.Direction)
	if nDotL > 0 {
		out = out.Add(l.Diffuse.Mul(c).Scale(nDotL))

		// Блик: наблюдатель в бесконечности (0,0,1), как по умолчанию в GL
		half := l.Direction.Add(mgl64.Vec3{0, 0, 1})
		if half.Len() > 0 {
			half = half.Normalize()
		}
		nDotH := math.Max(n.Dot(half), 0)
		spec := 1.0
		if l.Shininess > 0 {
			spec = math.Pow(nDotH, l.Shininess)
		}
		out = out.Add(l.Specular.Mul(l.MaterialSpecular).Scale(spec))
	}

	out.A = c.A
	return out.Clamp()
}
